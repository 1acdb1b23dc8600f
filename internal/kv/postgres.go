package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultQueryTimeout = 30 * time.Second

// PostgresStore keeps each blob as a row in the kv_blobs table. The
// underlying pool is unexported so callers cannot bypass the per-call
// timeout.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool against databaseURL and pings it.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	cfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000"
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// Get returns the blob stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}

	return value, nil
}

// Set upserts the blob under key.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}

	return nil
}

// Delete removes the key. Absent keys are a no-op.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}

	return nil
}

// Ping verifies database connectivity, for readiness checks.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ConnString returns the pool's connection string, for the migration runner.
func (s *PostgresStore) ConnString() string {
	return s.pool.Config().ConnString()
}

// Close releases all pooled connections.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
