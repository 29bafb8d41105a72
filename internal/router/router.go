// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// LegalDocs API server.
package router

import (
	"github.com/go-chi/chi/v5"

	"legaldocs/internal/handlers"
	"legaldocs/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.Health)
		r.Get("/templates", api.ListTemplates)
		r.Get("/templates/{id}", api.GetTemplate)
		r.Post("/generate-document", api.GenerateDocument)
		r.Get("/documents", api.ListDocuments)
		r.Get("/download/{fileName}", api.Download)
	})

	return r
}
