package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a flat string key-value store, the stand-in for browser local
// storage. Values are opaque serialized text.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// Health check
	Ping(ctx context.Context) error
	Close() error
}
