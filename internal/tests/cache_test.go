package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"comidas-api/internal/domain"
	"comidas-api/internal/storage"
)

func setupCache(t *testing.T) (*storage.OrderCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewOrderCache(client, domain.OrderTTL), mr
}

func TestOrderCache_PutGet(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	order := domain.Order{
		CreatedAt:    "2026-08-29T12:00:00Z",
		RestaurantID: "tacos",
		Dishes:       []map[string]any{{"name": "taco al pastor", "qty": float64(2)}},
	}

	err := cache.Put(ctx, "order-1", order)
	assert.NoError(t, err)

	got, err := cache.Get(ctx, "order-1")
	assert.NoError(t, err)
	assert.Equal(t, order, got)

	assert.Equal(t, domain.OrderTTL, mr.TTL("order-1"))

	// the cached document must not carry the id, responses fold it back in
	raw, err := mr.Get("order-1")
	assert.NoError(t, err)
	assert.NotContains(t, raw, "order_id")
}

func TestOrderCache_Expiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	err := cache.Put(ctx, "order-2", domain.Order{RestaurantID: "tacos"})
	assert.NoError(t, err)

	mr.FastForward(domain.OrderTTL + time.Second)

	_, err = cache.Get(ctx, "order-2")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOrderCache_Missing(t *testing.T) {
	cache, _ := setupCache(t)

	_, err := cache.Get(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
