package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"comidas-api/internal/domain"
)

type ImageServiceInterface struct {
	mock.Mock
}

func NewImageServiceInterface(t mockTestingT) *ImageServiceInterface {
	m := &ImageServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ImageServiceInterface) Upload(ctx context.Context, restaurantID, contentType string, body io.Reader) (domain.Image, error) {
	args := m.Called(ctx, restaurantID, contentType, body)
	return args.Get(0).(domain.Image), args.Error(1)
}

func (m *ImageServiceInterface) Get(ctx context.Context, id string) (domain.Image, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Image), args.Error(1)
}
