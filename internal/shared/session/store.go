package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists for a key.
var ErrNotFound = errors.New("session: value not found")

// Store is a key-value store scoped to browsing sessions. Values are opaque
// JSON blobs; expiry is the store's concern, not the caller's.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
