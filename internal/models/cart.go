package models

import (
	"time"
)

// CartLine snapshots a product at the moment it entered the cart.
// PriceAtAddition is deliberately decoupled from the live price: decay
// happening after the add never reprices a line already in the cart.
type CartLine struct {
	ProductID       string    `json:"product_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	ImagePath       string    `json:"image_path"`
	PriceAtAddition float64   `json:"price_at_addition"`
	AddedAt         time.Time `json:"added_at"`
}

type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.PriceAtAddition
	}
	return total
}

type CartResponse struct {
	Cart
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
}
