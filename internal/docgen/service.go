// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package docgen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"legaldocs/internal/cache"
	"legaldocs/internal/markup"
	"legaldocs/internal/renderer"
	"legaldocs/internal/templates"
)

// Generator is the external text-generation collaborator. Calls may fail or
// time out; the service treats every error the same way — by substituting
// deterministic content.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service coordinates content generation and rendering. The reliability
// contract: GenerateContent always returns a usable document, and
// GenerateDocument fails only for an unknown template or a renderer error.
type Service struct {
	catalog *templates.Catalog
	gen     Generator // nil when no provider is configured
	cache   cache.ContentCache
	timeout time.Duration
	now     func() time.Time
	group   singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout bounds each external generation call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithClock injects the time source used for fallback dates and artifact
// file names. Tests pin it to get reproducible documents.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service. gen may be nil, in which case every document is
// produced by the deterministic generator.
func New(catalog *templates.Catalog, gen Generator, c cache.ContentCache, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		gen:     gen,
		cache:   c,
		timeout: 45 * time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateContent resolves the document text for a form: cached result,
// accepted generator output, or deterministic fallback, in that order. It
// never fails. Concurrent calls for the same input share one generation:
// the first caller does the work, the rest wait for its result.
func (s *Service) GenerateContent(ctx context.Context, form templates.Form) string {
	key := contentKey(form)

	if content, ok := s.cache.Get(ctx, key); ok {
		return content
	}

	content, _, _ := s.group.Do(key, func() (any, error) {
		// A waiter may have populated the cache between our miss and the
		// flight starting.
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
		content := s.generate(ctx, form)
		s.cache.Set(ctx, key, content)
		return content, nil
	})
	return content.(string)
}

// generate runs one tier of the strategy: external call, validation,
// fallback. Errors from the collaborator are logged and absorbed here.
func (s *Service) generate(ctx context.Context, form templates.Form) string {
	req := RequirementsFor(form.TemplateID())

	if s.gen != nil {
		systemPrompt, userPrompt := BuildPrompt(form)

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		raw, err := s.gen.Generate(callCtx, systemPrompt, userPrompt)
		if err == nil {
			cleaned := markup.StripArtifacts(raw)
			if utf8.RuneCountInString(cleaned) >= req.MinChars {
				return cleaned
			}
			slog.Warn("generated content rejected, using fallback",
				"template", form.TemplateID(),
				"chars", utf8.RuneCountInString(cleaned),
				"min_chars", req.MinChars,
			)
		} else {
			slog.Warn("ai generation failed, using fallback",
				"template", form.TemplateID(),
				"error", err,
			)
		}
	}

	return Fallback(form, s.now())
}

// GenerateDocument produces a downloadable artifact for a raw API request.
// The only caller-visible failures are templates.ErrUnknownTemplate and a
// renderer error.
func (s *Service) GenerateDocument(ctx context.Context, templateID int, rawForm map[string]any, format string) (*renderer.Artifact, error) {
	tpl, err := s.catalog.Get(templateID)
	if err != nil {
		return nil, err
	}
	form, err := templates.ParseForm(templateID, rawForm)
	if err != nil {
		return nil, err
	}

	content := s.GenerateContent(ctx, form)
	blocks := markup.Classify(content)

	var (
		data []byte
		mime string
		ext  string
	)
	// Anything other than an explicit "pdf" renders as Word, matching the
	// original export behavior.
	if format == "pdf" {
		data, err = renderer.PDF(blocks, tpl.Name)
		mime, ext = renderer.MIMEPDF, "pdf"
	} else {
		data, err = renderer.DOCX(blocks, tpl.Name)
		mime, ext = renderer.MIMEDOCX, "docx"
	}
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	now := s.now()
	return &renderer.Artifact{
		Bytes:     data,
		FileName:  artifactFileName(tpl.Name, ext, now),
		MIME:      mime,
		CreatedAt: now,
	}, nil
}

// Preview resolves content for the on-screen preview: the plain text plus
// its HTML projection. Shares the generation path (and cache) with the
// file formats.
func (s *Service) Preview(ctx context.Context, templateID int, rawForm map[string]any) (content, html string, err error) {
	tpl, err := s.catalog.Get(templateID)
	if err != nil {
		return "", "", err
	}
	form, err := templates.ParseForm(templateID, rawForm)
	if err != nil {
		return "", "", err
	}

	content = s.GenerateContent(ctx, form)
	return content, markup.ToHTML(content, tpl.Name), nil
}

// contentKey derives the cache key from the exact generation input. Typed
// forms have a fixed field order, so the Go-syntax representation is a
// canonical serialization.
func contentKey(form templates.Form) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%#v", form.TemplateID(), form)))
	return hex.EncodeToString(sum[:])
}

// artifactFileName builds the stored artifact name: the template name with
// whitespace collapsed to underscores plus a millisecond timestamp.
func artifactFileName(templateName, ext string, now time.Time) string {
	base := strings.Join(strings.Fields(templateName), "_")
	return fmt.Sprintf("%s_%d.%s", base, now.UnixMilli(), ext)
}
