package models

import (
	"time"
)

const (
	ProductStatusActive = "active"
	ProductStatusSold   = "sold"
)

type Product struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	ImagePath     string     `json:"image_path"`
	OriginalPrice float64    `json:"original_price"`
	SellerName    string     `json:"seller_name"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	SoldPrice     *float64   `json:"sold_price,omitempty"`
	SoldAt        *time.Time `json:"sold_at,omitempty"`

	// Computed for display, never stored. SoldPrice is the frozen price
	// of record once the product leaves the shelf.
	CurrentPrice float64 `json:"current_price"`
	DayCount     int     `json:"day_count"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	OriginalPrice float64 `json:"original_price"`
	SellerName    string  `json:"seller_name"`
	ImageBase64   string  `json:"image_base64,omitempty"`
}
