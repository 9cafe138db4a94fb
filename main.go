package main

import (
	"context"
	"log"

	"comidas-api/config"
	httpapi "comidas-api/internal/api/http"
	"comidas-api/internal/domain"
	"comidas-api/internal/service"
	"comidas-api/internal/storage"
)

func main() {
	db := config.MustInitMongo()
	defer db.Client().Disconnect(context.Background())

	rdb := config.MustInitRedis()
	defer rdb.Close()

	documents := storage.NewDocumentStore(db)
	cache := storage.NewOrderCache(rdb, domain.OrderTTL)

	var publisher service.PedidoPublisher
	if writer := config.NewKafkaWriter("pedidos"); writer != nil {
		defer writer.Close()
		publisher = storage.NewEventPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, pedido events disabled")
	}

	publicURL := config.PublicURL()

	handler := httpapi.NewHandler(
		service.NewOrderService(cache),
		service.NewRestaurantService(documents, publicURL, service.DefaultQRGenerator{}),
		service.NewImageService(documents),
		service.NewPedidoService(documents, publisher),
		service.NewUserService(documents),
	)

	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}
