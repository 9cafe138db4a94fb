package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"comidas-api/internal/domain"
)

type EventPublisher struct {
	Writer *kafka.Writer
}

func NewEventPublisher(writer *kafka.Writer) *EventPublisher {
	return &EventPublisher{Writer: writer}
}

func (p *EventPublisher) PublishPedidoCreated(ctx context.Context, event domain.PedidoEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PedidoID),
		Value: payload,
	})
}
