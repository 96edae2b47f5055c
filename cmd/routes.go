package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Products
	mux.Post("/product", standardMiddleware.ThenFunc(app.productHandler.CreateProduct))
	mux.Get("/product/active", standardMiddleware.ThenFunc(app.productHandler.GetActiveProducts))
	mux.Get("/product/sold", standardMiddleware.ThenFunc(app.productHandler.GetSoldProducts))
	mux.Get("/product/:id", standardMiddleware.ThenFunc(app.productHandler.GetProductByID))
	mux.Post("/product/:id/sold", standardMiddleware.ThenFunc(app.productHandler.MarkProductSold))
	mux.Del("/product/:id", standardMiddleware.ThenFunc(app.productHandler.DeleteProduct))
	mux.Get("/images/products/:filename", http.HandlerFunc(app.productHandler.ServeProductImage))

	// Listing suggestion
	mux.Post("/suggestion", standardMiddleware.ThenFunc(app.suggestionHandler.SuggestListing))

	// Cart and checkout
	mux.Post("/cart", standardMiddleware.ThenFunc(app.cartHandler.CreateCart))
	mux.Get("/cart/:id", standardMiddleware.ThenFunc(app.cartHandler.GetCart))
	mux.Post("/cart/:id/items", standardMiddleware.ThenFunc(app.cartHandler.AddItem))
	mux.Del("/cart/:id/items/:product_id", standardMiddleware.ThenFunc(app.cartHandler.RemoveItem))
	mux.Post("/cart/:id/checkout", standardMiddleware.ThenFunc(app.checkoutHandler.Checkout))

	// Transactions and stats
	mux.Get("/transactions", standardMiddleware.ThenFunc(app.transactionHandler.GetTransactions))
	mux.Get("/transactions/:id", standardMiddleware.ThenFunc(app.transactionHandler.GetTransactionByID))
	mux.Get("/stats/sales", standardMiddleware.ThenFunc(app.statsHandler.GetSalesStats))

	// Prices
	mux.Get("/prices/:product_id", standardMiddleware.ThenFunc(app.priceHandler.GetCurrentPrice))
	mux.Get("/ws/prices", http.HandlerFunc(app.priceFeed.ServeWS))

	mux.Get("/metrics", promhttp.Handler())
	mux.Get("/healthz", standardMiddleware.ThenFunc(app.healthz))

	return mux
}

func (app *application) healthz(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		http.Error(w, `{"status":"degraded"}`, http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte(`{"status":"ok"}`))
}
