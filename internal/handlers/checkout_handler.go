package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/services"
)

type CheckoutHandler struct {
	Service *services.CheckoutService
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing cart ID", http.StatusBadRequest)
		return
	}

	transaction, err := h.Service.Checkout(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCartNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrCartEmpty):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrProductAlreadySold):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
}
