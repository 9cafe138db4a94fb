package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"comidas-api/internal/domain"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t mockTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Get(ctx context.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}
