package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"comidas-api/internal/domain"
	"comidas-api/internal/storage"
)

const imagesCollection = "images"

var ErrUnsupportedMediaType = errors.New("unsupported image content type")

const uploadChunkSize = 64 << 10

type ImageService struct {
	store DocumentStore
}

func NewImageService(store DocumentStore) *ImageService {
	return &ImageService{store: store}
}

// Upload reads the body incrementally and aborts the moment the running
// total reaches the document size ceiling, before anything is buffered
// further or persisted. The store's own too-large rejection is the second
// line of defense and surfaces the same error.
func (s *ImageService) Upload(ctx context.Context, restaurantID, contentType string, body io.Reader) (domain.Image, error) {
	if !domain.AllowedImageTypes[contentType] {
		return domain.Image{}, ErrUnsupportedMediaType
	}

	var data []byte
	buf := make([]byte, uploadChunkSize)
	size := 0
	for {
		n, err := body.Read(buf)
		size += n
		if size >= domain.ImageSizeLimit {
			return domain.Image{}, storage.ErrTooLarge
		}
		data = append(data, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Image{}, err
		}
	}

	image := domain.Image{
		ImageID:      uuid.NewString(),
		RestaurantID: restaurantID,
		ContentType:  contentType,
		CreatedAt:    time.Now().Format(time.RFC3339),
		Data:         data,
	}
	if err := s.store.InsertOne(ctx, imagesCollection, image); err != nil {
		return domain.Image{}, err
	}

	image.Data = nil
	return image, nil
}

func (s *ImageService) Get(ctx context.Context, id string) (domain.Image, error) {
	var image domain.Image
	err := s.store.FindOne(ctx, imagesCollection, bson.M{"image_id": id}, &image)
	return image, err
}
