package models

import (
	"time"
)

type TransactionLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

// Transaction is written once at checkout and never mutated afterwards.
type Transaction struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Lines     []TransactionLine `json:"lines"`
	Total     float64           `json:"total"`
}
