package service

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"comidas-api/internal/domain"
	"comidas-api/internal/storage"
)

const usersCollection = "usuarios"

type UserService struct {
	store DocumentStore
}

func NewUserService(store DocumentStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	user.UserID = uuid.NewString()
	if err := s.store.InsertOne(ctx, usersCollection, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	err := s.store.FindOne(ctx, usersCollection, bson.M{"user_id": id}, &user)
	return user, err
}

func (s *UserService) List(ctx context.Context, limit int64) ([]domain.User, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	users := []domain.User{}
	if err := s.store.Find(ctx, usersCollection, bson.M{}, limit, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Replace swaps the whole document matched by id for the given user. This is
// a destructive full replace, not a partial patch.
func (s *UserService) Replace(ctx context.Context, user domain.User) error {
	matched, err := s.store.ReplaceOne(ctx, usersCollection, bson.M{"user_id": user.UserID}, user)
	if err != nil {
		return err
	}
	if matched == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteOne(ctx, usersCollection, bson.M{"user_id": id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return storage.ErrNotFound
	}
	return nil
}
