package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/services"
)

type stubCatalog struct {
	products map[string]models.Product
}

func (s *stubCatalog) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return models.Product{}, models.ErrProductNotFound
	}
	return product, nil
}

func TestCartFlow(t *testing.T) {
	catalog := &stubCatalog{products: map[string]models.Product{
		"p1": {
			ID:            "p1",
			Name:          "Cafetière italienne",
			Category:      "Cuisine",
			OriginalPrice: 30,
			CurrentPrice:  27,
			Status:        models.ProductStatusActive,
			CreatedAt:     time.Now().Add(-24 * time.Hour),
		},
	}}
	h := &CartHandler{Service: services.NewCartService(catalog)}

	rec := httptest.NewRecorder()
	h.CreateCart(rec, httptest.NewRequest(http.MethodPost, "/cart", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("CreateCart: expected 201, got %d", rec.Code)
	}
	var created models.CartResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode cart: %v", err)
	}

	rec = httptest.NewRecorder()
	addReq := httptest.NewRequest(http.MethodPost, "/cart/"+created.ID+"/items?:id="+created.ID, strings.NewReader(`{"product_id":"p1"}`))
	h.AddItem(rec, addReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("AddItem: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var withLine models.CartResponse
	if err := json.NewDecoder(rec.Body).Decode(&withLine); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if withLine.Total != 27 {
		t.Fatalf("expected total 27, got %v", withLine.Total)
	}
	if len(withLine.Lines) != 1 || withLine.Lines[0].PriceAtAddition != 27 {
		t.Fatalf("unexpected lines: %+v", withLine.Lines)
	}

	rec = httptest.NewRecorder()
	delReq := httptest.NewRequest(http.MethodDelete, "/cart/x/items/p1?:id="+created.ID+"&:product_id=p1", nil)
	h.RemoveItem(rec, delReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("RemoveItem: expected 200, got %d", rec.Code)
	}
	var emptied models.CartResponse
	if err := json.NewDecoder(rec.Body).Decode(&emptied); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(emptied.Lines) != 0 || emptied.Total != 0 {
		t.Fatalf("expected emptied cart, got %+v", emptied)
	}
}

func TestAddItemUnknownCart(t *testing.T) {
	h := &CartHandler{Service: services.NewCartService(&stubCatalog{products: map[string]models.Product{}})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/nope/items?:id=nope", strings.NewReader(`{"product_id":"p1"}`))
	h.AddItem(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
