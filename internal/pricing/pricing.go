package pricing

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Schedule describes the solidarity discount applied to unsold items: a
// fixed share of the original price is shaved off per full day on the shelf,
// down to a floor the price never crosses.
type Schedule struct {
	DailyDropPercent float64
	FloorPercent     float64
}

// DefaultSchedule drops 10% of the original price per day with a 20% floor:
// an item listed at 100 costs 90 on day 1, 50 on day 5 and stays at 20 from
// day 8 on.
func DefaultSchedule() Schedule {
	return Schedule{DailyDropPercent: 0.10, FloorPercent: 0.20}
}

// CurrentPrice computes the solidarity price for an item listed at
// originalPrice at createdAt, as of now. Non-increasing in elapsed days,
// never negative, never above the original price.
func (s Schedule) CurrentPrice(originalPrice float64, createdAt, now time.Time) float64 {
	if originalPrice <= 0 || math.IsNaN(originalPrice) || math.IsInf(originalPrice, 0) {
		return 0
	}

	days := DayCount(createdAt, now)
	price := originalPrice * (1 - s.DailyDropPercent*float64(days))
	floor := originalPrice * s.FloorPercent
	if price < floor {
		price = floor
	}
	if price > originalPrice {
		price = originalPrice
	}
	return roundCents(price)
}

// CurrentPrice applies the default schedule.
func CurrentPrice(originalPrice float64, createdAt, now time.Time) float64 {
	return DefaultSchedule().CurrentPrice(originalPrice, createdAt, now)
}

// DayCount returns whole days elapsed since listing, clamped to zero so a
// skewed clock never yields a negative shelf age.
func DayCount(createdAt, now time.Time) int {
	if !now.After(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt) / day)
}

// DaysToSell counts shelf days between listing and sale, rounding up with a
// floor of one: a same-day sale still occupied the shelf for a day.
func DaysToSell(createdAt, soldAt time.Time) int {
	elapsed := soldAt.Sub(createdAt)
	if elapsed <= 0 {
		return 1
	}
	days := int(math.Ceil(float64(elapsed) / float64(day)))
	if days < 1 {
		days = 1
	}
	return days
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
