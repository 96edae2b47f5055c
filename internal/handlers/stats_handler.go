package handlers

import (
	"encoding/json"
	"net/http"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/services"
	"boutiqueBack/utils"
)

type StatsHandler struct {
	Service *services.StatsService
}

type salesStatsResponse struct {
	models.SalesStats
	TotalRevenueFormatted string `json:"total_revenue_formatted"`
	AveragePriceFormatted string `json:"average_price_formatted"`
}

func (h *StatsHandler) GetSalesStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.SalesStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(salesStatsResponse{
		SalesStats:            stats,
		TotalRevenueFormatted: utils.FormatCurrency(stats.TotalRevenue),
		AveragePriceFormatted: utils.FormatCurrency(stats.AveragePrice),
	})
}
