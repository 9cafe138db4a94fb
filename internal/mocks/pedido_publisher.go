package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"comidas-api/internal/domain"
)

type PedidoPublisher struct {
	mock.Mock
}

func NewPedidoPublisher(t mockTestingT) *PedidoPublisher {
	m := &PedidoPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PedidoPublisher) PublishPedidoCreated(ctx context.Context, event domain.PedidoEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
