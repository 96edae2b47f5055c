package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsListed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_products_listed_total",
		Help: "Donations confirmed and put on the shelf.",
	})
	ProductsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_products_sold_total",
		Help: "Items sold, directly or through a cart checkout.",
	})
	RevenueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_revenue_eur_total",
		Help: "Revenue collected at frozen sale prices, in euros.",
	})
	SuggestionFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_suggestion_fallbacks_total",
		Help: "Listing suggestions served from the fixed fallback.",
	})
)
