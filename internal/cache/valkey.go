// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// contentKeyPrefix namespaces generation-result keys in Valkey.
	contentKeyPrefix = "doc:"

	// DefaultContentTTL is how long generated content stays cached when the
	// Valkey backend is used. The in-process cache has no TTL.
	DefaultContentTTL = 24 * time.Hour
)

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return client, nil
}

// Valkey is a ContentCache backed by a Valkey (Redis-compatible) server,
// shared across replicas of the service.
type Valkey struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValkey creates a Valkey-backed content cache.
func NewValkey(client *redis.Client, ttl time.Duration) *Valkey {
	if ttl == 0 {
		ttl = DefaultContentTTL
	}
	return &Valkey{client: client, ttl: ttl}
}

// Get retrieves cached content for a key. Returns false on miss or error;
// a cache error degrades to a regenerate, never to a failed request.
func (v *Valkey) Get(ctx context.Context, key string) (string, bool) {
	val, err := v.client.Get(ctx, contentKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("content cache get error", "key", key, "error", err)
		return "", false
	}
	slog.Debug("content cache hit", "key", key)
	return val, true
}

// Set stores generated content under a key with the configured TTL.
func (v *Valkey) Set(ctx context.Context, key, content string) {
	if err := v.client.Set(ctx, contentKeyPrefix+key, content, v.ttl).Err(); err != nil {
		slog.Warn("content cache set error", "key", key, "error", err)
	}
}
