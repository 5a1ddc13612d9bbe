package config

import (
	"testing"
	"time"
)

func setRequiredDBVars(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "seating")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "seating_test")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredDBVars(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("ADMIN_USER", "")
	t.Setenv("ADMIN_PASS", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("INGEST_WORKER", "")

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %s", cfg.Env)
	}
	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Fatalf("expected default frontend origin, got %s", cfg.FrontendURL)
	}
	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		t.Fatalf("expected default admin credentials, got %q/%q", cfg.AdminUser, cfg.AdminPass)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("expected default upload dir, got %s", cfg.UploadDir)
	}
	if cfg.WorkerCmd != "" {
		t.Fatalf("expected no worker command by default, got %s", cfg.WorkerCmd)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredDBVars(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "18080")
	t.Setenv("FRONTEND_URL", "https://seating.example.edu")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("ADMIN_USER", "hallmaster")
	t.Setenv("ADMIN_PASS", "hunter2")
	t.Setenv("UPLOAD_DIR", "/var/lib/seating/uploads")
	t.Setenv("INGEST_WORKER", "/usr/local/bin/excel_worker")

	cfg := Load()
	if cfg.Env != "prod" {
		t.Fatalf("expected APP_ENV override, got %s", cfg.Env)
	}
	if cfg.Port != "18080" {
		t.Fatalf("expected APP_PORT override, got %s", cfg.Port)
	}
	if cfg.FrontendURL != "https://seating.example.edu" {
		t.Fatalf("expected FRONTEND_URL override, got %s", cfg.FrontendURL)
	}
	if cfg.DBPass != "secret" {
		t.Fatalf("expected DB_PASS override, got %s", cfg.DBPass)
	}
	if cfg.AdminUser != "hallmaster" || cfg.AdminPass != "hunter2" {
		t.Fatalf("expected admin credential overrides, got %q/%q", cfg.AdminUser, cfg.AdminPass)
	}
	if cfg.WorkerCmd != "/usr/local/bin/excel_worker" {
		t.Fatalf("expected INGEST_WORKER override, got %s", cfg.WorkerCmd)
	}
}

func TestLoadRateLimitConfigBounds(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("expected capacity clamped to 1, got %d", cfg.Capacity)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("expected TTL raised to at least 5 intervals, got %s", cfg.TTL)
	}
	if cfg.KeyStrategy != "ip_route" {
		t.Fatalf("expected default key strategy ip_route, got %s", cfg.KeyStrategy)
	}
}

func TestEnvDurFallback(t *testing.T) {
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "not-a-duration")
	cfg := LoadRateLimitConfig()
	if cfg.RefillInterval != time.Second {
		t.Fatalf("expected fallback interval 1s, got %s", cfg.RefillInterval)
	}
}
