package models

type CategoryStat struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	RevenueShare float64 `json:"revenue_share"`
}

// SalesStats is recomputed on demand from the sold products and never stored.
type SalesStats struct {
	TotalRevenue      float64        `json:"total_revenue"`
	TotalCount        int            `json:"total_count"`
	AveragePrice      float64        `json:"average_price"`
	AverageDaysToSell int            `json:"average_days_to_sell"`
	Categories        []CategoryStat `json:"categories"`
}
