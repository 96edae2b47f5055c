package models

// PriceUpdate is the frame pushed to shop views over the price feed and
// cached for polling clients. Advisory only: the sale path always reads the
// engine directly.
type PriceUpdate struct {
	ProductID    string  `json:"product_id"`
	CurrentPrice float64 `json:"current_price"`
	DayCount     int     `json:"day_count"`
}
