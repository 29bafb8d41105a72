// Package main is the entry point for the LegalDocs API server.
// It loads configuration, connects to optional services (PostgreSQL,
// Valkey), wires the document pipeline, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legaldocs/internal/ai"
	"legaldocs/internal/cache"
	"legaldocs/internal/config"
	"legaldocs/internal/database"
	"legaldocs/internal/docgen"
	"legaldocs/internal/handlers"
	"legaldocs/internal/router"
	"legaldocs/internal/store"
	"legaldocs/internal/templates"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	catalog := templates.NewCatalog()

	// Document records live in PostgreSQL when a host is configured;
	// without it the API lists artifacts straight from the folder.
	var records *store.DocumentStore
	if cfg.DBHost != "" {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		records = store.NewDocumentStore(db)
	} else {
		slog.Warn("postgres not configured — document records disabled")
	}

	// Generation cache: Valkey when configured (shared across replicas),
	// otherwise in-process.
	var contentCache cache.ContentCache = cache.NewMemory()
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		contentCache = cache.NewValkey(valkeyClient, cache.DefaultContentTTL)
	}

	// AI providers. An empty registry is fine: every request then uses the
	// deterministic templates, and the API behaves identically.
	registry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openrouter": {
			APIKey:    cfg.OpenRouterKey,
			Model:     cfg.OpenRouterModel,
			BaseURL:   cfg.OpenRouterBaseURL,
			Referer:   cfg.OpenRouterReferer,
			MaxTokens: cfg.AIMaxTokens,
		},
		"claude": {
			APIKey:    cfg.ClaudeKey,
			Model:     cfg.ClaudeModel,
			BaseURL:   cfg.ClaudeBaseURL,
			MaxTokens: cfg.AIMaxTokens,
		},
	})

	var generator docgen.Generator
	if len(registry.Available()) > 0 {
		generator = registry
		slog.Info("ai providers initialized",
			"active", registry.ActiveName(),
			"available", registry.Available(),
		)
	} else {
		slog.Warn("no ai provider configured — documents will use deterministic templates")
	}

	docService := docgen.New(catalog, generator, contentCache,
		docgen.WithTimeout(cfg.AITimeout),
	)

	files, err := store.NewFileStore(cfg.DocsDir)
	if err != nil {
		slog.Error("failed to initialize artifacts folder", "error", err)
		os.Exit(1)
	}
	slog.Info("artifacts folder ready", "dir", files.Dir())

	api := handlers.New(catalog, docService, records, files)
	r := router.New(api)

	// WriteTimeout must accommodate generation requests that wait on the
	// LLM round-trip before rendering.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
