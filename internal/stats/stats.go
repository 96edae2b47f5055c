package stats

import (
	"math"
	"sort"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/pricing"
)

// DefaultCategory labels sold items whose category was left empty.
const DefaultCategory = "Divers"

type categoryBucket struct {
	name    string
	count   int
	revenue float64
}

// Aggregate derives the dashboard snapshot from the sold products. Items
// that are not sold, or that carry no frozen price/timestamp, are filtered
// silently. The input is never mutated.
func Aggregate(products []models.Product) models.SalesStats {
	var result models.SalesStats

	buckets := make(map[string]*categoryBucket)
	var ordered []*categoryBucket
	totalDays := 0

	for _, p := range products {
		if p.Status != models.ProductStatusSold || p.SoldPrice == nil || p.SoldAt == nil {
			continue
		}

		result.TotalCount++
		result.TotalRevenue += *p.SoldPrice
		totalDays += pricing.DaysToSell(p.CreatedAt, *p.SoldAt)

		name := p.Category
		if name == "" {
			name = DefaultCategory
		}
		bucket, ok := buckets[name]
		if !ok {
			bucket = &categoryBucket{name: name}
			buckets[name] = bucket
			ordered = append(ordered, bucket)
		}
		bucket.count++
		bucket.revenue += *p.SoldPrice
	}

	if result.TotalCount > 0 {
		result.AveragePrice = result.TotalRevenue / float64(result.TotalCount)
		result.AverageDaysToSell = int(math.Round(float64(totalDays) / float64(result.TotalCount)))
	}

	// Descending by revenue; stable sort keeps first-appearance order on ties.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].revenue > ordered[j].revenue
	})

	result.Categories = make([]models.CategoryStat, 0, len(ordered))
	for _, bucket := range ordered {
		share := 0.0
		if result.TotalRevenue > 0 {
			share = bucket.revenue / result.TotalRevenue
		}
		result.Categories = append(result.Categories, models.CategoryStat{
			Name:         bucket.name,
			Count:        bucket.count,
			Revenue:      bucket.revenue,
			RevenueShare: share,
		})
	}

	return result
}
