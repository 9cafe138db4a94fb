package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comidas-api/internal/domain"
)

type OrderService struct {
	cache OrderCache
}

func NewOrderService(cache OrderCache) *OrderService {
	return &OrderService{cache: cache}
}

// Create stamps the order and caches it under a fresh id. The restaurant_id
// is accepted as-is, it is not checked against the restaurants collection.
func (s *OrderService) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	id := uuid.NewString()
	order.OrderID = ""
	order.CreatedAt = time.Now().Format(time.RFC3339)
	if err := s.cache.Put(ctx, id, order); err != nil {
		return domain.Order{}, err
	}
	order.OrderID = id
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.cache.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	order.OrderID = id
	return order, nil
}
