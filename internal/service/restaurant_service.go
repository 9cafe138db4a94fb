package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const restaurantsCollection = "restaurants"

type RestaurantService struct {
	store     DocumentStore
	publicURL string
	qr        QRGenerator
}

func NewRestaurantService(store DocumentStore, publicURL string, qr QRGenerator) *RestaurantService {
	return &RestaurantService{store: store, publicURL: publicURL, qr: qr}
}

// Get looks a restaurant up by its lower-cased id and rewrites the banner
// and dish image references into absolute URLs on the image endpoint.
func (s *RestaurantService) Get(ctx context.Context, id string) (bson.M, error) {
	doc := bson.M{}
	filter := bson.M{"restaurant_id": strings.ToLower(id)}
	if err := s.store.FindOne(ctx, restaurantsCollection, filter, &doc); err != nil {
		return nil, err
	}

	if banner, ok := doc["banner"].(string); ok {
		doc["banner"] = s.imageURL(banner)
	}
	if menu, ok := doc["menu"].(bson.A); ok {
		for _, item := range menu {
			dish, ok := item.(bson.M)
			if !ok {
				continue
			}
			if image, ok := dish["image"].(string); ok {
				dish["image"] = s.imageURL(image)
			}
		}
	}

	return doc, nil
}

// QRCode renders a PNG linking to the restaurant's public page. Missing
// restaurants surface the store's not-found error untouched.
func (s *RestaurantService) QRCode(ctx context.Context, id string) ([]byte, error) {
	doc := bson.M{}
	filter := bson.M{"restaurant_id": strings.ToLower(id)}
	if err := s.store.FindOne(ctx, restaurantsCollection, filter, &doc); err != nil {
		return nil, err
	}
	return s.qr.Generate(s.publicURL + "/restaurant/" + strings.ToLower(id))
}

func (s *RestaurantService) imageURL(ref string) string {
	return s.publicURL + "/image/" + ref
}
