package services

import (
	"context"
	"testing"
	"time"

	"boutiqueBack/internal/models"
)

// stubQuoter serves whatever product it currently holds, so tests can move
// the live price between calls.
type stubQuoter struct {
	product models.Product
	err     error
}

func (s *stubQuoter) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	if s.err != nil {
		return models.Product{}, s.err
	}
	return s.product, nil
}

func activeProduct(id string, currentPrice float64) models.Product {
	return models.Product{
		ID:            id,
		Name:          "Service à thé",
		Category:      "Cuisine",
		OriginalPrice: 60,
		CurrentPrice:  currentPrice,
		Status:        models.ProductStatusActive,
		CreatedAt:     time.Now().Add(-48 * time.Hour),
	}
}

func TestCartLineFreezesPriceAtAddition(t *testing.T) {
	quoter := &stubQuoter{product: activeProduct("p1", 54)}
	svc := NewCartService(quoter)

	cart := svc.CreateCart()
	if _, err := svc.AddProduct(context.Background(), cart.ID, "p1"); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	// The engine has since decayed the price; the line must not move.
	quoter.product = activeProduct("p1", 48)

	got, err := svc.GetCart(cart.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got.Lines))
	}
	if got.Lines[0].PriceAtAddition != 54 {
		t.Errorf("line was repriced: %v", got.Lines[0].PriceAtAddition)
	}
	if got.Total() != 54 {
		t.Errorf("cart total moved with the decay: %v", got.Total())
	}
}

func TestAddProductRejectsSold(t *testing.T) {
	sold := activeProduct("p1", 30)
	sold.Status = models.ProductStatusSold
	svc := NewCartService(&stubQuoter{product: sold})

	cart := svc.CreateCart()
	if _, err := svc.AddProduct(context.Background(), cart.ID, "p1"); err != models.ErrProductAlreadySold {
		t.Fatalf("expected ErrProductAlreadySold, got %v", err)
	}
}

func TestAddProductTwiceKeepsSingleLine(t *testing.T) {
	svc := NewCartService(&stubQuoter{product: activeProduct("p1", 30)})

	cart := svc.CreateCart()
	if _, err := svc.AddProduct(context.Background(), cart.ID, "p1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	got, err := svc.AddProduct(context.Background(), cart.ID, "p1")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("expected 1 line after duplicate add, got %d", len(got.Lines))
	}
}

func TestRemoveLine(t *testing.T) {
	svc := NewCartService(&stubQuoter{product: activeProduct("p1", 30)})

	cart := svc.CreateCart()
	if _, err := svc.AddProduct(context.Background(), cart.ID, "p1"); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	got, err := svc.RemoveLine(cart.ID, "p1")
	if err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(got.Lines))
	}
	if got.Total() != 0 {
		t.Fatalf("expected zero total, got %v", got.Total())
	}
}

func TestGetCartUnknownID(t *testing.T) {
	svc := NewCartService(&stubQuoter{})
	if _, err := svc.GetCart("missing"); err != models.ErrCartNotFound {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestGetCartReturnsSnapshot(t *testing.T) {
	svc := NewCartService(&stubQuoter{product: activeProduct("p1", 30)})

	cart := svc.CreateCart()
	if _, err := svc.AddProduct(context.Background(), cart.ID, "p1"); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	got, _ := svc.GetCart(cart.ID)
	got.Lines[0].PriceAtAddition = 1

	again, _ := svc.GetCart(cart.ID)
	if again.Lines[0].PriceAtAddition != 30 {
		t.Fatalf("mutating a snapshot leaked into the cart: %v", again.Lines[0].PriceAtAddition)
	}
}
