// Package config provides environment-driven configuration for reloj-control.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Storage backends.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds all application configuration values.
type Config struct {
	StorageBackend string
	DatabaseURL    Secret
	RedisAddr      string
	RedisPassword  Secret
	RedisDB        int
	Port           string
	ListenHost     string
	CORSOrigins    []string
	LogLevel       string
	AdminPIN       Secret
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		StorageBackend: envOrDefault("STORAGE_BACKEND", BackendPostgres),
		DatabaseURL:    Secret(envOrDefault("DATABASE_URL", "")),
		RedisAddr:      envOrDefault("REDIS_ADDR", ""),
		RedisPassword:  Secret(envOrDefault("REDIS_PASSWORD", "")),
		Port:           envOrDefault("PORT", "4040"),
		ListenHost:     envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		AdminPIN:       Secret(envOrDefault("ADMIN_PIN", "")),
	}

	redisDB, err := strconv.Atoi(envOrDefault("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return nil, fmt.Errorf("REDIS_DB must be a non-negative integer")
	}
	cfg.RedisDB = redisDB

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:4042")
	cfg.CORSOrigins = strings.Split(origins, ",")
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL.Value() == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		dbURL, err := url.Parse(c.DatabaseURL.Value())
		if err != nil {
			return fmt.Errorf("DATABASE_URL is not a valid URL: %w", err)
		}
		if dbURL.Scheme != "postgres" && dbURL.Scheme != "postgresql" {
			return fmt.Errorf("DATABASE_URL must use the postgres scheme")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case BackendMemory:
		// Nothing to check; data lives and dies with the process.
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of postgres, redis, memory")
	}

	if c.AdminPIN.Value() == "" {
		return fmt.Errorf("ADMIN_PIN is required")
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric")
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
