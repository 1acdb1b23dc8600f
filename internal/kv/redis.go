package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces all blobs within a shared Redis instance.
const keyPrefix = "reloj:"

// RedisStore keeps each blob as a Redis string value.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store and verifies connectivity.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get returns the blob stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}

	return value, nil
}

// Set stores the blob under key with no expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}

	return nil
}

// Delete removes the key. Absent keys are a no-op.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}

	return nil
}

// Ping verifies connectivity, for readiness checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
