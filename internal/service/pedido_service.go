package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"comidas-api/internal/domain"
)

const pedidosCollection = "pedidos"

type PedidoService struct {
	store     DocumentStore
	publisher PedidoPublisher
}

// NewPedidoService accepts a nil publisher when event publishing is disabled.
func NewPedidoService(store DocumentStore, publisher PedidoPublisher) *PedidoService {
	return &PedidoService{store: store, publisher: publisher}
}

// Create persists the client-supplied field bag with a fresh pedido_id and
// the estado forced to pending, whatever the client sent for either.
func (s *PedidoService) Create(ctx context.Context, body bson.M) (bson.M, error) {
	doc := bson.M{}
	for k, v := range body {
		doc[k] = v
	}
	doc["pedido_id"] = uuid.NewString()
	doc["estado"] = domain.EstadoPendiente

	if err := s.store.InsertOne(ctx, pedidosCollection, doc); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishPedidoCreated(ctx, domain.PedidoEvent{
			Type:      "pedido_created",
			PedidoID:  doc["pedido_id"].(string),
			Estado:    domain.EstadoPendiente,
			Timestamp: time.Now(),
		})
	}

	return doc, nil
}

func (s *PedidoService) Get(ctx context.Context, id string) (bson.M, error) {
	doc := bson.M{}
	if err := s.store.FindOne(ctx, pedidosCollection, bson.M{"pedido_id": id}, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PedidoService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	docs := []bson.M{}
	if err := s.store.Find(ctx, pedidosCollection, bson.M{}, limit, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}
