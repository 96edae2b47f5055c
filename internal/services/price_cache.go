package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"boutiqueBack/internal/models"
)

// PriceCache holds the latest computed solidarity prices for polling
// clients. Display-only: the sale path never reads it, and a Redis outage
// only makes clients fall back to the live endpoints.
type PriceCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func priceKey(productID string) string {
	return fmt.Sprintf("price:%s", productID)
}

func (c *PriceCache) SetPrices(ctx context.Context, updates []models.PriceUpdate) error {
	if c == nil || c.RDB == nil {
		return nil
	}
	pipe := c.RDB.Pipeline()
	for _, update := range updates {
		data, err := json.Marshal(update)
		if err != nil {
			return err
		}
		pipe.Set(ctx, priceKey(update.ProductID), data, c.TTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// DeletePrices drops cached entries whose products left the active state,
// so a sold item cannot be quoted from the cache until the TTL runs out.
func (c *PriceCache) DeletePrices(ctx context.Context, productIDs ...string) error {
	if c == nil || c.RDB == nil || len(productIDs) == 0 {
		return nil
	}
	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = priceKey(id)
	}
	return c.RDB.Del(ctx, keys...).Err()
}

func (c *PriceCache) GetPrice(ctx context.Context, productID string) (models.PriceUpdate, bool, error) {
	if c == nil || c.RDB == nil {
		return models.PriceUpdate{}, false, nil
	}
	data, err := c.RDB.Get(ctx, priceKey(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.PriceUpdate{}, false, nil
		}
		return models.PriceUpdate{}, false, err
	}
	var update models.PriceUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return models.PriceUpdate{}, false, err
	}
	return update, true, nil
}
