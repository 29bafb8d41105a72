// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package cache provides the generation-result cache. Keys derive from the
// exact generation input, so a stored value is a pure memoization: writers
// racing on the same key always write the same content.
package cache

import "context"

// ContentCache stores generated document content keyed by the generation
// input. Implementations must be safe for concurrent use. A miss is not an
// error; Set failures are logged by implementations and never propagate,
// since the cache is an optimization, not a record of truth.
type ContentCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, content string)
}
