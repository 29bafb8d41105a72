// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if !cfg.IsDev() {
		t.Error("IsDev = false in development")
	}
	if cfg.AIProvider != "openrouter" {
		t.Errorf("AIProvider = %q, want openrouter", cfg.AIProvider)
	}
	if cfg.AITimeout != 45*time.Second {
		t.Errorf("AITimeout = %v, want 45s", cfg.AITimeout)
	}
	if cfg.AIMaxTokens != 2000 {
		t.Errorf("AIMaxTokens = %d, want 2000", cfg.AIMaxTokens)
	}
	if cfg.OpenRouterModel != "deepseek/deepseek-chat:free" {
		t.Errorf("OpenRouterModel = %q", cfg.OpenRouterModel)
	}
	if cfg.DocsDir != "generated_documents" {
		t.Errorf("DocsDir = %q", cfg.DocsDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("AI_TIMEOUT", "30s")
	t.Setenv("AI_MAX_TOKENS", "4000")
	t.Setenv("AI_PROVIDER", "claude")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AITimeout != 30*time.Second {
		t.Errorf("AITimeout = %v, want 30s", cfg.AITimeout)
	}
	if cfg.AIMaxTokens != 4000 {
		t.Errorf("AIMaxTokens = %d, want 4000", cfg.AIMaxTokens)
	}
	if cfg.AIProvider != "claude" {
		t.Errorf("AIProvider = %q, want claude", cfg.AIProvider)
	}
}

func TestLoadProductionGuard(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_HOST", "db.internal")

	if _, err := Load(); err == nil {
		t.Fatal("Load must fail in production with the default database password")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev = true in production")
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := &Config{
		Host: "0.0.0.0", Port: "5000",
		DBUser: "legaldocs", DBPassword: "pw", DBHost: "localhost", DBPort: "5432", DBName: "legaldocs",
	}

	if want := "postgres://legaldocs:pw@localhost:5432/legaldocs?sslmode=disable"; cfg.DSN() != want {
		t.Errorf("DSN = %q, want %q", cfg.DSN(), want)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_DURATION", "oops")
	if got := envDuration("X_DURATION", time.Minute); got != time.Minute {
		t.Errorf("envDuration with invalid value = %v, want fallback", got)
	}

	t.Setenv("X_INT", "12x")
	if got := envInt("X_INT", 7); got != 7 {
		t.Errorf("envInt with invalid value = %d, want fallback", got)
	}

	t.Setenv("X_STR", "")
	if got := envOrDefault("X_STR", "fb"); got != "fb" {
		t.Errorf("envOrDefault with empty value = %q, want fallback", got)
	}
}
