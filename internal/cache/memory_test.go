// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	m.Set(ctx, "a", "contenido del documento")
	got, ok := m.Get(ctx, "a")
	if !ok || got != "contenido del documento" {
		t.Errorf("Get = (%q, %v), want stored content", got, ok)
	}

	m.Set(ctx, "a", "contenido actualizado")
	if got, _ := m.Get(ctx, "a"); got != "contenido actualizado" {
		t.Errorf("Get after overwrite = %q", got)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%10)
			m.Set(ctx, key, "contenido")
			m.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if m.Len() != 10 {
		t.Errorf("Len = %d, want 10", m.Len())
	}
}
