package main

import (
	"context"
	"time"

	"boutiqueBack/internal/models"
)

const priceTickTimeout = 30 * time.Second

// runPriceTicker recomputes the display price of every active product on a
// fixed interval, refreshes the Redis cache, and broadcasts the batch to
// connected price displays.
func (app *application) runPriceTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.refreshPrices(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.refreshPrices(ctx)
		}
	}
}

func (app *application) refreshPrices(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, priceTickTimeout)
	defer cancel()

	products, err := app.productService.GetActiveProducts(runCtx)
	if err != nil {
		app.errorLog.Printf("price ticker: load active products: %v", err)
		return
	}

	updates := make([]models.PriceUpdate, 0, len(products))
	for _, p := range products {
		updates = append(updates, models.PriceUpdate{
			ProductID:    p.ID,
			CurrentPrice: p.CurrentPrice,
			DayCount:     p.DayCount,
		})
	}

	if err := app.priceCache.SetPrices(runCtx, updates); err != nil {
		app.errorLog.Printf("price ticker: cache prices: %v", err)
	}
	if len(updates) > 0 {
		app.priceFeed.Broadcast(updates)
	}
}
