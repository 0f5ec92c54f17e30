package storage

import (
	"context"
	"errors"
)

// Store is a durable key-value slot addressed by a fixed key. Callers own
// the serialization format; the store only moves bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("storage: key not found")
