package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"TEST_PORT" envDefault:"123"`
	IdleTTL time.Duration `env:"TEST_IDLE_TTL" envDefault:"30m"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.IdleTTL != 30*time.Minute {
		t.Fatalf("expected default idle ttl 30m, got %s", cfg.IdleTTL)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("URLIST_TEST_PORT", "8080")
	t.Setenv("TEST_PORT", "9999")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected prefixed port 8080, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("URLIST_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
