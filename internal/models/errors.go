package models

import (
	"errors"
)

var (
	ErrProductNotFound     = errors.New("models: product not found")
	ErrProductAlreadySold  = errors.New("models: product already sold")
	ErrCartNotFound        = errors.New("models: cart not found")
	ErrCartEmpty           = errors.New("models: cart is empty")
	ErrTransactionNotFound = errors.New("models: transaction not found")
	ErrInvalidPrice        = errors.New("models: invalid price")
)
