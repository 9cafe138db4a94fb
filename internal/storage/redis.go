package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"comidas-api/internal/domain"
)

// OrderCache stores in-flight orders under their generated id. Keys expire
// after TTL; the store's native expiry is trusted, age is never re-checked.
type OrderCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewOrderCache(client *redis.Client, ttl time.Duration) *OrderCache {
	return &OrderCache{Client: client, TTL: ttl}
}

func (c *OrderCache) Put(ctx context.Context, id string, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, id, payload, c.TTL).Err()
}

func (c *OrderCache) Get(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	payload, err := c.Client.Get(ctx, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return order, ErrNotFound
	}
	if err != nil {
		return order, err
	}
	err = json.Unmarshal(payload, &order)
	return order, err
}
