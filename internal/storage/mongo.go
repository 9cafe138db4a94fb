package storage

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bsonObjectTooLarge is the server error code for documents over the BSON cap.
const bsonObjectTooLarge = 10334

// DocumentStore is a thin pass-through to the document database. Reads strip
// the storage-assigned _id so it never leaks into responses.
type DocumentStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{db: db}
}

var noInternalID = bson.M{"_id": 0}

func (s *DocumentStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	err := s.db.Collection(collection).
		FindOne(ctx, filter, options.FindOne().SetProjection(noInternalID)).
		Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *DocumentStore) Find(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	cursor, err := s.db.Collection(collection).
		Find(ctx, filter, options.Find().SetProjection(noInternalID).SetLimit(limit))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *DocumentStore) InsertOne(ctx context.Context, collection string, document any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, document)
	if isTooLarge(err) {
		return ErrTooLarge
	}
	return err
}

func (s *DocumentStore) ReplaceOne(ctx context.Context, collection string, filter bson.M, replacement any) (int64, error) {
	res, err := s.db.Collection(collection).ReplaceOne(ctx, filter, replacement)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *DocumentStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func isTooLarge(err error) bool {
	if err == nil {
		return false
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, e := range writeErr.WriteErrors {
			if e.Code == bsonObjectTooLarge {
				return true
			}
		}
	}
	// The driver rejects oversized documents before they reach the server.
	return strings.Contains(err.Error(), "too large")
}
