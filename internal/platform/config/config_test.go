package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.ServiceName != "votingsystem" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
	if !cfg.SeedEnabled {
		t.Fatal("expected seed enabled by default")
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected 12h session ttl, got %s", cfg.SessionTTL)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "ballots")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.ServiceName != "ballots" || cfg.LogFormat != "json" || cfg.SeedEnabled {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.SessionTTL)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	if _, err := Parse(); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("LOG_FORMAT", "xml")
	if _, err := Parse(); err == nil || !strings.Contains(err.Error(), "LOG_FORMAT") {
		t.Fatalf("expected log format error, got %v", err)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SEED_FILE=custom.yaml\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("SEED_FILE", "")
	os.Unsetenv("SEED_FILE")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SeedFile != "custom.yaml" {
		t.Fatalf("expected seed file from .env, got %q", cfg.SeedFile)
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env must not fail: %v", err)
	}
}
