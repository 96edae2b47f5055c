package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"boutiqueBack/internal/metrics"
	"boutiqueBack/internal/models"
)

// transactionCreator persists a checkout atomically. Satisfied by
// TransactionRepository.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
}

// CheckoutService turns a cart into an immutable transaction. Payment is a
// simulated no-op: no gateway is contacted, the checkout only freezes the
// sold state and records the revenue.
type CheckoutService struct {
	Carts           *CartService
	TransactionRepo transactionCreator
	Prices          priceInvalidator
}

func (s *CheckoutService) Checkout(ctx context.Context, cartID string) (models.Transaction, error) {
	cart, err := s.Carts.GetCart(cartID)
	if err != nil {
		return models.Transaction{}, err
	}
	if len(cart.Lines) == 0 {
		return models.Transaction{}, models.ErrCartEmpty
	}

	transaction := models.Transaction{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Total:     cart.Total(),
	}
	for _, line := range cart.Lines {
		transaction.Lines = append(transaction.Lines, models.TransactionLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Price:     line.PriceAtAddition,
		})
	}

	created, err := s.TransactionRepo.CreateTransaction(ctx, transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	if s.Prices != nil {
		productIDs := make([]string, len(created.Lines))
		for i, line := range created.Lines {
			productIDs[i] = line.ProductID
		}
		s.Prices.DeletePrices(ctx, productIDs...)
	}

	s.Carts.ClearCart(cartID)
	metrics.ProductsSold.Add(float64(len(created.Lines)))
	metrics.RevenueTotal.Add(created.Total)
	return created, nil
}
