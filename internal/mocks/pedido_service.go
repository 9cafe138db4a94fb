package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type PedidoServiceInterface struct {
	mock.Mock
}

func NewPedidoServiceInterface(t mockTestingT) *PedidoServiceInterface {
	m := &PedidoServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PedidoServiceInterface) Create(ctx context.Context, body bson.M) (bson.M, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *PedidoServiceInterface) Get(ctx context.Context, id string) (bson.M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *PedidoServiceInterface) List(ctx context.Context, limit int64) ([]bson.M, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}
