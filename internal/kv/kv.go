// Package kv provides the key-value blob store the collection stores
// persist into. A key holds one JSON-encoded blob; there is no atomicity
// across keys and no locking, matching the storage contract the business
// layer is written against.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a named-blob store. Implementations must treat each call as a
// single atomic operation on one key.
type Store interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the blob under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
