package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("ENV", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Generation.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", cfg.Generation.Model)
	}
	if cfg.Generation.Timeout != 45*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Generation.Timeout)
	}
	if cfg.Workspace.SweepSpec != "@every 10m" {
		t.Fatalf("unexpected sweep spec: %q", cfg.Workspace.SweepSpec)
	}
	if cfg.Generation.APIKey != "" {
		t.Fatalf("expected empty api key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_KEY", "k")
	t.Setenv("SEARCH_WORKERS", "3")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.Generation.APIKey != "k" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Workspace.SearchWorkers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Workspace.SearchWorkers)
	}
	if cfg.Redis.SessionTTL != time.Hour {
		t.Fatalf("expected 1h session ttl, got %v", cfg.Redis.SessionTTL)
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for default secret in production")
	}
}
