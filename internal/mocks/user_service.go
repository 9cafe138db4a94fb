package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"comidas-api/internal/domain"
)

type UserServiceInterface struct {
	mock.Mock
}

func NewUserServiceInterface(t mockTestingT) *UserServiceInterface {
	m := &UserServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserServiceInterface) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserServiceInterface) Get(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserServiceInterface) List(ctx context.Context, limit int64) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserServiceInterface) Replace(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserServiceInterface) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
