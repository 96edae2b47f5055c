package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"boutiqueBack/internal/metrics"
	"boutiqueBack/internal/models"
)

type listingSuggester interface {
	SuggestListing(ctx context.Context, imageBase64, hintName string) (models.Suggestion, error)
}

// SuggestionHandler serves AI listing help for a photographed donation.
// Any failure of the captioning call is absorbed into the fixed fallback
// suggestion so the volunteer never sees a hard error.
type SuggestionHandler struct {
	Client   listingSuggester
	Fallback func(hintName string) models.Suggestion
	ErrorLog *log.Logger
}

func (h *SuggestionHandler) SuggestListing(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ImageBase64 == "" {
		http.Error(w, "Missing image payload", http.StatusBadRequest)
		return
	}

	suggestion, err := h.Client.SuggestListing(r.Context(), req.ImageBase64, req.HintName)
	if err != nil {
		if h.ErrorLog != nil {
			h.ErrorLog.Printf("listing suggestion failed, serving fallback: %v", err)
		}
		metrics.SuggestionFallbacks.Inc()
		suggestion = h.Fallback(req.HintName)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestion)
}
