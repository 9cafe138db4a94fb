package domain

import "time"

const (
	// EstadoPendiente is the status assigned to every newly persisted pedido.
	EstadoPendiente = 1

	// ImageSizeLimit mirrors the 16 MiB per-document ceiling of the document store.
	ImageSizeLimit = 16 << 20

	// OrderTTL is how long an in-flight order survives in the cache.
	OrderTTL = 2 * time.Hour

	// DefaultListLimit caps list endpoints when no limit is supplied.
	DefaultListLimit = 100
)

// User roles.
const (
	RoleCliente     = "cliente"
	RoleRestaurante = "restaurante"
	RoleRepartidor  = "repartidor"
	RoleAdmin       = "admin"
)

// AllowedImageTypes is the upload content-type allow-list.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Order is an in-flight order held in the ephemeral cache. OrderID is set
// only on responses; the cached document carries the remaining fields.
type Order struct {
	OrderID      string           `json:"order_id,omitempty"`
	CreatedAt    string           `json:"created_at"`
	RestaurantID string           `json:"restaurant_id"`
	Dishes       []map[string]any `json:"dishes"`
}

type Image struct {
	ImageID      string `json:"image_id" bson:"image_id"`
	RestaurantID string `json:"restaurant_id" bson:"restaurant_id"`
	ContentType  string `json:"content_type" bson:"content_type"`
	CreatedAt    string `json:"created_at" bson:"created_at"`
	Data         []byte `json:"-" bson:"data,omitempty"`
}

type User struct {
	UserID   string `json:"user_id" bson:"user_id"`
	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password" bson:"password"`
	Role     string `json:"role" bson:"role"`
}

// PedidoEvent is published after a pedido document is persisted.
type PedidoEvent struct {
	Type      string    `json:"type"`
	PedidoID  string    `json:"pedido_id"`
	Estado    int       `json:"estado"`
	Timestamp time.Time `json:"timestamp"`
}
