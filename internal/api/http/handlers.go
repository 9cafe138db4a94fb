package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"comidas-api/internal/domain"
	"comidas-api/internal/service"
	"comidas-api/internal/storage"
)

type Handler struct {
	Orders      service.OrderServiceInterface
	Restaurants service.RestaurantServiceInterface
	Images      service.ImageServiceInterface
	Pedidos     service.PedidoServiceInterface
	Users       service.UserServiceInterface
}

func NewHandler(orderSvc service.OrderServiceInterface, restSvc service.RestaurantServiceInterface, imageSvc service.ImageServiceInterface, pedidoSvc service.PedidoServiceInterface, userSvc service.UserServiceInterface) *Handler {
	return &Handler{
		Orders:      orderSvc,
		Restaurants: restSvc,
		Images:      imageSvc,
		Pedidos:     pedidoSvc,
		Users:       userSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/order", h.createOrder).Methods("POST")
	r.HandleFunc("/order/{id}", h.getOrder).Methods("GET")

	r.HandleFunc("/restaurant/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurant/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	r.HandleFunc("/upload/image", h.uploadImage).Methods("POST")
	r.HandleFunc("/image/{id}", h.getImage).Methods("GET")

	r.HandleFunc("/pedido/", h.createPedido).Methods("POST")
	r.HandleFunc("/pedidos/", h.listPedidos).Methods("GET")
	r.HandleFunc("/pedido/{id}", h.getPedido).Methods("GET")

	r.HandleFunc("/usuario", h.createUser).Methods("POST")
	r.HandleFunc("/usuarios", h.listUsers).Methods("GET")
	r.HandleFunc("/usuario/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/usuario/{id}", h.updateUser).Methods("PUT")
	r.HandleFunc("/usuario/{id}", h.deleteUser).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "comidas-api",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if order.RestaurantID == "" || order.Dishes == nil {
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}

	created, err := h.Orders.Create(r.Context(), order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Restaurants.QRCode(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qrCode)
}

// uploadImage streams the multipart body so oversized uploads are cut off
// mid-transfer instead of being buffered whole.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.URL.Query().Get("restaurant_id")
	if restaurantID == "" {
		http.Error(w, "Missing restaurant_id", http.StatusBadRequest)
		return
	}

	reader, err := r.MultipartReader()
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			http.Error(w, "Missing image file", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "Error retrieving the file", http.StatusBadRequest)
			return
		}
		if part.FormName() != "image" {
			continue
		}

		metadata, err := h.Images.Upload(r.Context(), restaurantID, part.Header.Get("Content-Type"), part)
		switch {
		case errors.Is(err, service.ErrUnsupportedMediaType):
			http.Error(w, "Invalid file type. Only JPEG, PNG, WebP allowed", http.StatusBadRequest)
		case errors.Is(err, storage.ErrTooLarge):
			http.Error(w, "Image exceeds the 16 MiB limit", http.StatusRequestEntityTooLarge)
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(metadata)
		}
		return
	}
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	image, err := h.Images.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", image.ContentType)
	w.Write(image.Data)
}

func (h *Handler) createPedido(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	pedido, err := h.Pedidos.Create(r.Context(), bson.M(body))
	if err != nil {
		log.Printf("[pedidos] create failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pedido)
}

func (h *Handler) listPedidos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Pedidos.List(r.Context(), parseLimit(r))
	if err != nil {
		log.Printf("[pedidos] list failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pedidos)
}

func (h *Handler) getPedido(w http.ResponseWriter, r *http.Request) {
	pedido, err := h.Pedidos.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Pedido not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[pedidos] get failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pedido)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Users.Create(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context(), parseLimit(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	user := domain.User{
		UserID:   mux.Vars(r)["id"],
		Username: query.Get("username"),
		Email:    query.Get("email"),
		Password: query.Get("password"),
		Role:     query.Get("role"),
	}

	err := h.Users.Replace(r.Context(), user)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.Users.Delete(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

func parseLimit(r *http.Request) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit <= 0 {
		return domain.DefaultListLimit
	}
	return limit
}
