package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"boutiqueBack/internal/models"
)

// stubTransactionRepo records the transaction it was asked to persist and
// fails with err when set, standing in for a conflicting concurrent sale.
type stubTransactionRepo struct {
	err     error
	created models.Transaction
	calls   int
}

func (s *stubTransactionRepo) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	s.calls++
	if s.err != nil {
		return models.Transaction{}, s.err
	}
	s.created = transaction
	return transaction, nil
}

type stubInvalidator struct {
	deleted []string
}

func (s *stubInvalidator) DeletePrices(ctx context.Context, productIDs ...string) error {
	s.deleted = append(s.deleted, productIDs...)
	return nil
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := NewCartService(&stubQuoter{})
	svc := &CheckoutService{Carts: carts, TransactionRepo: &stubTransactionRepo{}}

	cart := carts.CreateCart()
	if _, err := svc.Checkout(context.Background(), cart.ID); err != models.ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutUnknownCart(t *testing.T) {
	svc := &CheckoutService{Carts: NewCartService(&stubQuoter{}), TransactionRepo: &stubTransactionRepo{}}

	if _, err := svc.Checkout(context.Background(), "missing"); err != models.ErrCartNotFound {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCheckoutTotalsFrozenPricesAndClearsCart(t *testing.T) {
	quoter := &stubQuoter{product: activeProduct("p1", 54)}
	carts := NewCartService(quoter)
	repo := &stubTransactionRepo{}
	invalidator := &stubInvalidator{}
	svc := &CheckoutService{Carts: carts, TransactionRepo: repo, Prices: invalidator}

	cart := carts.CreateCart()
	if _, err := carts.AddProduct(context.Background(), cart.ID, "p1"); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	quoter.product = activeProduct("p2", 20)
	if _, err := carts.AddProduct(context.Background(), cart.ID, "p2"); err != nil {
		t.Fatalf("add p2: %v", err)
	}

	// Prices have decayed since the lines were added; the checkout must
	// settle at the captured prices, not today's.
	quoter.product = activeProduct("p1", 40)

	created, err := svc.Checkout(context.Background(), cart.ID)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if created.Total != 74 {
		t.Errorf("expected total 74, got %v", created.Total)
	}
	if len(created.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(created.Lines))
	}
	if created.Lines[0].Price != 54 || created.Lines[1].Price != 20 {
		t.Errorf("lines not settled at frozen prices: %+v", created.Lines)
	}
	if repo.created.ID != created.ID {
		t.Errorf("persisted transaction differs from the returned one")
	}

	if _, err := carts.GetCart(cart.ID); err != models.ErrCartNotFound {
		t.Errorf("cart should be cleared after checkout, got %v", err)
	}

	sort.Strings(invalidator.deleted)
	if len(invalidator.deleted) != 2 || invalidator.deleted[0] != "p1" || invalidator.deleted[1] != "p2" {
		t.Errorf("expected cached prices p1,p2 dropped, got %v", invalidator.deleted)
	}
}

func TestCheckoutConflictKeepsCart(t *testing.T) {
	carts := NewCartService(&stubQuoter{product: activeProduct("p1", 30)})
	repo := &stubTransactionRepo{err: models.ErrProductAlreadySold}
	invalidator := &stubInvalidator{}
	svc := &CheckoutService{Carts: carts, TransactionRepo: repo, Prices: invalidator}

	cart := carts.CreateCart()
	if _, err := carts.AddProduct(context.Background(), cart.ID, "p1"); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	_, err := svc.Checkout(context.Background(), cart.ID)
	if !errors.Is(err, models.ErrProductAlreadySold) {
		t.Fatalf("expected ErrProductAlreadySold, got %v", err)
	}

	// The shopper keeps the cart to drop the contested line themselves.
	kept, err := carts.GetCart(cart.ID)
	if err != nil {
		t.Fatalf("cart was cleared on a failed checkout: %v", err)
	}
	if len(kept.Lines) != 1 {
		t.Fatalf("expected the line to survive, got %d lines", len(kept.Lines))
	}
	if len(invalidator.deleted) != 0 {
		t.Errorf("no cache entries should be dropped on a failed checkout, got %v", invalidator.deleted)
	}
}
