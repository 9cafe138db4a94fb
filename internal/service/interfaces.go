package service

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson"

	"comidas-api/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
}

type RestaurantServiceInterface interface {
	Get(ctx context.Context, id string) (bson.M, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type ImageServiceInterface interface {
	Upload(ctx context.Context, restaurantID, contentType string, body io.Reader) (domain.Image, error)
	Get(ctx context.Context, id string) (domain.Image, error)
}

type PedidoServiceInterface interface {
	Create(ctx context.Context, body bson.M) (bson.M, error)
	Get(ctx context.Context, id string) (bson.M, error)
	List(ctx context.Context, limit int64) ([]bson.M, error)
}

type UserServiceInterface interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context, limit int64) ([]domain.User, error)
	Replace(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id string) error
}

// DocumentStore is the slice of the document database the services need.
type DocumentStore interface {
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error
	Find(ctx context.Context, collection string, filter bson.M, limit int64, out any) error
	InsertOne(ctx context.Context, collection string, document any) error
	ReplaceOne(ctx context.Context, collection string, filter bson.M, replacement any) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)
}

type OrderCache interface {
	Put(ctx context.Context, id string, order domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
}

type PedidoPublisher interface {
	PublishPedidoCreated(ctx context.Context, event domain.PedidoEvent) error
}

var (
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ ImageServiceInterface      = (*ImageService)(nil)
	_ PedidoServiceInterface     = (*PedidoService)(nil)
	_ UserServiceInterface       = (*UserService)(nil)
)
