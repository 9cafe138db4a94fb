package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type DocumentStore struct {
	mock.Mock
}

func NewDocumentStore(t mockTestingT) *DocumentStore {
	m := &DocumentStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DocumentStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	args := m.Called(ctx, collection, filter, out)
	return args.Error(0)
}

func (m *DocumentStore) Find(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	args := m.Called(ctx, collection, filter, limit, out)
	return args.Error(0)
}

func (m *DocumentStore) InsertOne(ctx context.Context, collection string, document any) error {
	args := m.Called(ctx, collection, document)
	return args.Error(0)
}

func (m *DocumentStore) ReplaceOne(ctx context.Context, collection string, filter bson.M, replacement any) (int64, error) {
	args := m.Called(ctx, collection, filter, replacement)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DocumentStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}
