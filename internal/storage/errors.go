package storage

import "errors"

var (
	// ErrNotFound covers missing documents and expired cache keys.
	ErrNotFound = errors.New("not found")

	// ErrTooLarge is returned when a document exceeds the store's size ceiling.
	ErrTooLarge = errors.New("document too large")
)
