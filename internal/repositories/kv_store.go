package repositories

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by key-value stores when a key is absent
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the interface that wraps methods of a device-local key-value storage.
//
// Implementations store opaque values under string keys and must be safe for concurrent use.
type KVStore interface {
	// Method Get retrieves a value by key.
	//
	// If the key is absent, ErrKeyNotFound will be returned.
	Get(ctx context.Context, key string) ([]byte, error)
	// Method Set stores a value under key, replacing a previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Method Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
