package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/services"
)

// PriceHandler serves the display price for a single product, preferring
// the ticker-maintained cache and falling back to a live computation.
type PriceHandler struct {
	Service *services.ProductService
	Cache   *services.PriceCache
}

func (h *PriceHandler) GetCurrentPrice(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":product_id")
	if id == "" {
		http.Error(w, "Missing product ID", http.StatusBadRequest)
		return
	}

	if update, ok, err := h.Cache.GetPrice(r.Context(), id); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(update)
		return
	}

	product, err := h.Service.GetProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if product.Status != models.ProductStatusActive {
		http.Error(w, "product is no longer on sale", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PriceUpdate{
		ProductID:    product.ID,
		CurrentPrice: product.CurrentPrice,
		DayCount:     product.DayCount,
	})
}
