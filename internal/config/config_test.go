package config

import (
	"fmt"
	"strings"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_BACKEND", BackendMemory)
	t.Setenv("ADMIN_PIN", "1234")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "4040" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Addr() != "127.0.0.1:4040" {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:4042" {
		t.Errorf("cors = %v", cfg.CORSOrigins)
	}
}

func TestLoadRequiresPIN(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_PIN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing ADMIN_PIN")
	}
}

func TestLoadPostgresValidation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid", "postgres://user:pw@localhost:5432/reloj", false},
		{"postgresql scheme", "postgresql://user:pw@localhost:5432/reloj", false},
		{"missing", "", true},
		{"wrong scheme", "mysql://localhost/reloj", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv("STORAGE_BACKEND", BackendPostgres)
			t.Setenv("DATABASE_URL", tt.url)

			_, err := Load()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Load: %v", err)
			}
		})
	}
}

func TestLoadRedisRequiresAddr(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", BackendRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing REDIS_ADDR")
	}

	t.Setenv("REDIS_ADDR", "localhost:6379")
	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", "flatfile")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestCORSOriginsSplitAndTrimmed(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("cors = %v", cfg.CORSOrigins)
	}
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("hunter2")

	if got := fmt.Sprintf("%s %v %#v", s, s, s); strings.Contains(got, "hunter2") {
		t.Errorf("secret leaked: %q", got)
	}
	if s.Value() != "hunter2" {
		t.Errorf("Value = %q", s.Value())
	}
}
