// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API consumed by the wizard
// frontend: the template catalog, document generation/preview, and the
// generated-artifacts listing and download endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"legaldocs/internal/docgen"
	"legaldocs/internal/renderer"
	"legaldocs/internal/store"
	"legaldocs/internal/templates"
)

// API holds the handler dependencies. The record store is nil when no
// database is configured; listing then falls back to the artifacts folder.
type API struct {
	catalog *templates.Catalog
	docs    *docgen.Service
	records *store.DocumentStore
	files   *store.FileStore
}

// New creates the API handler group.
func New(catalog *templates.Catalog, docs *docgen.Service, records *store.DocumentStore, files *store.FileStore) *API {
	return &API{
		catalog: catalog,
		docs:    docs,
		records: records,
		files:   files,
	}
}

// ListTemplates handles GET /api/templates.
func (a *API) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.catalog.List())
}

// GetTemplate handles GET /api/templates/{id}.
func (a *API) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	tpl, err := a.catalog.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// generateRequest is the POST /api/generate-document body. The template id
// arrives as a JSON number from the wizard but as a string from older
// clients, so it is coerced after decoding.
type generateRequest struct {
	TemplateID any            `json:"templateId"`
	FormData   map[string]any `json:"formData"`
	Format     string         `json:"format"`
}

// GenerateDocument handles POST /api/generate-document. The "preview"
// format returns the resolved text and its HTML projection as JSON; "pdf"
// and "docx" stream the rendered artifact as an attachment and record it.
func (a *API) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	templateID, ok := toInt(req.TemplateID)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	if req.FormData == nil {
		req.FormData = map[string]any{}
	}

	if req.Format == "preview" {
		content, html, err := a.docs.Preview(r.Context(), templateID, req.FormData)
		if err != nil {
			a.writeGenerateError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"content": content,
			"html":    html,
		})
		return
	}

	artifact, err := a.docs.GenerateDocument(r.Context(), templateID, req.FormData, req.Format)
	if err != nil {
		a.writeGenerateError(w, err)
		return
	}

	a.persistArtifact(templateID, req.Format, artifact)

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	w.Header().Set("Content-Length", strconv.FormatInt(artifact.Size(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Bytes)
}

// persistArtifact writes the artifact file and, when a database is
// configured, its record. Persistence failures are logged and do not block
// the download — the user already has a complete document in flight. The
// record's timestamp is the artifact's own generation instant, so it always
// matches the one embedded in the file name.
func (a *API) persistArtifact(templateID int, format string, artifact *renderer.Artifact) {
	if err := a.files.Save(artifact.FileName, artifact.Bytes); err != nil {
		slog.Warn("artifact not saved", "file", artifact.FileName, "error", err)
		return
	}

	if a.records == nil {
		return
	}
	tpl, err := a.catalog.Get(templateID)
	if err != nil {
		return
	}
	if format != "pdf" {
		format = "docx"
	}
	rec := &store.Document{
		ID:           uuid.New(),
		TemplateID:   templateID,
		TemplateName: tpl.Name,
		FileName:     artifact.FileName,
		FileSize:     artifact.Size(),
		Format:       format,
		CreatedAt:    artifact.CreatedAt,
	}
	if err := a.records.Insert(rec); err != nil {
		slog.Warn("document record not saved", "file", artifact.FileName, "error", err)
	}
}

// ListDocuments handles GET /api/documents: database records when
// available, otherwise a directory listing of the artifacts folder.
func (a *API) ListDocuments(w http.ResponseWriter, r *http.Request) {
	if a.records != nil {
		docs, err := a.records.List(100)
		if err != nil {
			slog.Error("list document records failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not list documents")
			return
		}
		if docs == nil {
			docs = []store.Document{}
		}
		writeJSON(w, http.StatusOK, docs)
		return
	}

	files, err := a.files.List()
	if err != nil {
		slog.Error("list artifacts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list documents")
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// Download handles GET /api/download/{fileName}.
func (a *API) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "fileName")
	data, err := a.files.Read(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Health handles GET /health.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "LegalDocs API is running",
	})
}

// writeGenerateError maps pipeline errors onto API responses: unknown
// templates are the client's mistake, anything else is the one legitimate
// server-side failure (rendering).
func (a *API) writeGenerateError(w http.ResponseWriter, err error) {
	if errors.Is(err, templates.ErrUnknownTemplate) {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}
	slog.Error("document generation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "could not generate document")
}

// toInt coerces a decoded JSON value into an int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeError writes a JSON error body, matching the {"error": ...} shape
// the frontend expects.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
