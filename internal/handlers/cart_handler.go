package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/services"
	"boutiqueBack/utils"
)

type CartHandler struct {
	Service *services.CartService
}

func cartResponse(cart models.Cart) models.CartResponse {
	total := cart.Total()
	return models.CartResponse{
		Cart:           cart,
		Total:          total,
		TotalFormatted: utils.FormatCurrency(total),
	}
}

func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart := h.Service.CreateCart()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cartResponse(cart))
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing cart ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Service.GetCart(id)
	if err != nil {
		if errors.Is(err, models.ErrCartNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing cart ID", http.StatusBadRequest)
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "Missing product ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Service.AddProduct(r.Context(), id, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCartNotFound), errors.Is(err, models.ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrProductAlreadySold):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	productID := r.URL.Query().Get(":product_id")
	if id == "" || productID == "" {
		http.Error(w, "Missing cart or product ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Service.RemoveLine(id, productID)
	if err != nil {
		if errors.Is(err, models.ErrCartNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(cart))
}
