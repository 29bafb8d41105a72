// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"sync"
)

// Memory is the default in-process ContentCache: a mutex-guarded map with
// process lifetime. It has no eviction; repeated identical requests stay
// byte-identical for as long as the process lives.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Get returns the cached content for a key.
func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores content under a key. Last writer wins; concurrent writers for
// the same key always carry identical content, so the race is benign.
func (m *Memory) Set(_ context.Context, key, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = content
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
