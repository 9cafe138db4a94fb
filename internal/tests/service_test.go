package tests

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"comidas-api/internal/domain"
	"comidas-api/internal/mocks"
	"comidas-api/internal/service"
	"comidas-api/internal/storage"
)

func TestOrderService_CreateGet(t *testing.T) {
	cache, mr := setupCache(t)
	svc := service.NewOrderService(cache)
	ctx := context.Background()

	order := domain.Order{
		RestaurantID: "tacos",
		Dishes:       []map[string]any{{"name": "taco"}},
	}

	created, err := svc.Create(ctx, order)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.OrderID)

	_, err = time.Parse(time.RFC3339, created.CreatedAt)
	assert.NoError(t, err)

	got, err := svc.Get(ctx, created.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, created, got)

	mr.FastForward(domain.OrderTTL + time.Second)

	_, err = svc.Get(ctx, created.OrderID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestImageService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects_unsupported_type", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		svc := service.NewImageService(store)

		_, err := svc.Upload(ctx, "tacos", "image/gif", strings.NewReader("gif!"))
		assert.ErrorIs(t, err, service.ErrUnsupportedMediaType)
	})

	t.Run("rejects_oversized_before_store", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		svc := service.NewImageService(store)

		_, err := svc.Upload(ctx, "tacos", "image/png", bytes.NewReader(make([]byte, domain.ImageSizeLimit)))
		assert.ErrorIs(t, err, storage.ErrTooLarge)
	})

	t.Run("stores_metadata_and_bytes", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		var inserted domain.Image
		store.On("InsertOne", mock.Anything, "images", mock.Anything).
			Run(func(args mock.Arguments) { inserted = args.Get(2).(domain.Image) }).
			Return(nil).Once()
		svc := service.NewImageService(store)

		metadata, err := svc.Upload(ctx, "tacos", "image/png", bytes.NewReader([]byte("png-bytes")))
		assert.NoError(t, err)
		assert.NotEmpty(t, metadata.ImageID)
		assert.Equal(t, "tacos", metadata.RestaurantID)
		assert.Equal(t, "image/png", metadata.ContentType)
		assert.Nil(t, metadata.Data)
		assert.Equal(t, []byte("png-bytes"), inserted.Data)
	})

	t.Run("remaps_store_too_large", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		store.On("InsertOne", mock.Anything, "images", mock.Anything).
			Return(storage.ErrTooLarge).Once()
		svc := service.NewImageService(store)

		_, err := svc.Upload(ctx, "tacos", "image/jpeg", strings.NewReader("jpeg"))
		assert.ErrorIs(t, err, storage.ErrTooLarge)
	})
}

func TestImageService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewDocumentStore(t)
	svc := service.NewImageService(store)

	var inserted domain.Image
	store.On("InsertOne", mock.Anything, "images", mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(2).(domain.Image) }).
		Return(nil).Once()

	data := []byte("webp-bytes")
	metadata, err := svc.Upload(ctx, "tacos", "image/webp", bytes.NewReader(data))
	assert.NoError(t, err)

	store.On("FindOne", mock.Anything, "images", bson.M{"image_id": metadata.ImageID}, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*domain.Image)
			*out = inserted
		}).
		Return(nil).Once()

	got, err := svc.Get(ctx, metadata.ImageID)
	assert.NoError(t, err)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "image/webp", got.ContentType)
}

func TestRestaurantService_Get(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewDocumentStore(t)

	// upper- and lower-cased ids hit the same lower-cased filter
	store.On("FindOne", mock.Anything, "restaurants", bson.M{"restaurant_id": "tacos"}, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*bson.M)
			*out = bson.M{
				"restaurant_id": "tacos",
				"banner":        "banner-ref",
				"menu": bson.A{
					bson.M{"name": "taco", "image": "img-1"},
					bson.M{"name": "burrito", "image": "img-2"},
				},
			}
		}).
		Return(nil).Twice()

	svc := service.NewRestaurantService(store, "http://public.example:8000", service.DefaultQRGenerator{})

	doc, err := svc.Get(ctx, "TACOS")
	assert.NoError(t, err)
	assert.Equal(t, "http://public.example:8000/image/banner-ref", doc["banner"])

	menu := doc["menu"].(bson.A)
	assert.Equal(t, "http://public.example:8000/image/img-1", menu[0].(bson.M)["image"])
	assert.Equal(t, "http://public.example:8000/image/img-2", menu[1].(bson.M)["image"])

	lower, err := svc.Get(ctx, "tacos")
	assert.NoError(t, err)
	assert.Equal(t, doc["banner"], lower["banner"])
}

func TestRestaurantService_QRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_restaurant", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		store.On("FindOne", mock.Anything, "restaurants", bson.M{"restaurant_id": "nope"}, mock.Anything).
			Return(storage.ErrNotFound).Once()
		svc := service.NewRestaurantService(store, "http://public.example:8000", service.DefaultQRGenerator{})

		_, err := svc.QRCode(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("renders_png", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		store.On("FindOne", mock.Anything, "restaurants", bson.M{"restaurant_id": "tacos"}, mock.Anything).
			Return(nil).Once()
		svc := service.NewRestaurantService(store, "http://public.example:8000", service.DefaultQRGenerator{})

		qrCode, err := svc.QRCode(ctx, "tacos")
		assert.NoError(t, err)
		assert.NotEmpty(t, qrCode)
	})
}

func TestPedidoService_Create(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewDocumentStore(t)
	publisher := mocks.NewPedidoPublisher(t)

	store.On("InsertOne", mock.Anything, "pedidos", mock.Anything).Return(nil).Once()
	publisher.On("PublishPedidoCreated", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewPedidoService(store, publisher)

	doc, err := svc.Create(ctx, bson.M{"plato": "taco", "estado": 9})
	assert.NoError(t, err)
	assert.Equal(t, domain.EstadoPendiente, doc["estado"])
	assert.NotEmpty(t, doc["pedido_id"])
	assert.Equal(t, "taco", doc["plato"])
}

func TestPedidoService_Create_NoPublisher(t *testing.T) {
	store := mocks.NewDocumentStore(t)
	store.On("InsertOne", mock.Anything, "pedidos", mock.Anything).Return(nil).Once()

	svc := service.NewPedidoService(store, nil)

	doc, err := svc.Create(context.Background(), bson.M{})
	assert.NoError(t, err)
	assert.Equal(t, domain.EstadoPendiente, doc["estado"])
}

func TestPedidoService_List_DefaultLimit(t *testing.T) {
	store := mocks.NewDocumentStore(t)
	store.On("Find", mock.Anything, "pedidos", bson.M{}, int64(domain.DefaultListLimit), mock.Anything).
		Return(nil).Once()

	svc := service.NewPedidoService(store, nil)

	docs, err := svc.List(context.Background(), 0)
	assert.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Len(t, docs, 0)
}

func TestUserService_Create_AssignsID(t *testing.T) {
	store := mocks.NewDocumentStore(t)
	store.On("InsertOne", mock.Anything, "usuarios", mock.Anything).Return(nil).Once()

	svc := service.NewUserService(store)

	user, err := svc.Create(context.Background(), domain.User{
		Username: "a", Email: "a@x.com", Password: "p", Role: domain.RoleCliente,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "a", user.Username)
}

func TestUserService_Replace_NotFound(t *testing.T) {
	store := mocks.NewDocumentStore(t)
	store.On("ReplaceOne", mock.Anything, "usuarios", bson.M{"user_id": "missing"}, mock.Anything).
		Return(int64(0), nil).Once()

	svc := service.NewUserService(store)

	err := svc.Replace(context.Background(), domain.User{UserID: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not_found", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		store.On("DeleteOne", mock.Anything, "usuarios", bson.M{"user_id": "missing"}).
			Return(int64(0), nil).Once()
		svc := service.NewUserService(store)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), storage.ErrNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		store := mocks.NewDocumentStore(t)
		store.On("DeleteOne", mock.Anything, "usuarios", bson.M{"user_id": "u-1"}).
			Return(int64(1), nil).Once()
		svc := service.NewUserService(store)

		assert.NoError(t, svc.Delete(ctx, "u-1"))
	})
}
