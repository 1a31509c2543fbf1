package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BILL_CACHE_TTL", "")
	t.Setenv("MENU_CACHE_TTL", "")

	cfg := Load()
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.BillCacheTTL != 3600 {
		t.Errorf("BillCacheTTL = %d, want 3600", cfg.BillCacheTTL)
	}
	if cfg.MenuCacheTTL != 300 {
		t.Errorf("MenuCacheTTL = %d, want 300", cfg.MenuCacheTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test:test@db:5432/test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BILL_CACHE_TTL", "120")
	t.Setenv("MENU_CACHE_TTL", "not-a-number")

	cfg := Load()
	if cfg.DatabaseURL != "postgres://test:test@db:5432/test" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.BillCacheTTL != 120 {
		t.Errorf("BillCacheTTL = %d, want 120", cfg.BillCacheTTL)
	}
	// Unparseable values fall back to the default.
	if cfg.MenuCacheTTL != 300 {
		t.Errorf("MenuCacheTTL = %d, want 300", cfg.MenuCacheTTL)
	}
}
