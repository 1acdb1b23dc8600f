package kv

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store for tests and dev mode. Values are
// copied on the way in and out so callers cannot alias the stored blob.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set stores the blob under key.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored

	return nil
}

// Delete removes the key. Absent keys are a no-op.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)

	return nil
}
