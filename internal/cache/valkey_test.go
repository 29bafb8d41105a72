// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

// TestValkeyRoundTrip is an integration test; it needs a running Valkey
// instance and skips otherwise.
func TestValkeyRoundTrip(t *testing.T) {
	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	client, err := ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("valkey not available: %v", err)
	}
	defer client.Close()

	v := NewValkey(client, time.Minute)
	ctx := context.Background()
	key := fmt.Sprintf("test-%d", time.Now().UnixNano())
	defer client.Del(ctx, contentKeyPrefix+key)

	if _, ok := v.Get(ctx, key); ok {
		t.Fatal("Get before Set reported a hit")
	}

	v.Set(ctx, key, "contenido generado")
	got, ok := v.Get(ctx, key)
	if !ok || got != "contenido generado" {
		t.Errorf("Get = (%q, %v), want stored content", got, ok)
	}
}

func TestNewValkeyDefaultTTL(t *testing.T) {
	v := NewValkey(nil, 0)
	if v.ttl != DefaultContentTTL {
		t.Errorf("ttl = %v, want %v", v.ttl, DefaultContentTTL)
	}
}
