// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package store persists generated-document records and artifact files.
// The record store needs PostgreSQL; the file store is a plain directory.
// The content pipeline itself never reads either back — they exist so the
// API can list and re-serve what was generated.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is one generated-document record.
type Document struct {
	ID           uuid.UUID `json:"id"`
	UserID       *string   `json:"userId,omitempty"`
	TemplateID   int       `json:"templateId"`
	TemplateName string    `json:"templateName"`
	FileName     string    `json:"fileName"`
	FileSize     int64     `json:"fileSize"`
	Format       string    `json:"format"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DocumentStore handles document-record database operations.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a DocumentStore with the given database connection.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Insert stores a new document record.
func (s *DocumentStore) Insert(d *Document) error {
	_, err := s.db.Exec(`
		INSERT INTO documents (id, user_id, template_id, template_name, file_name, file_size, format, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, d.ID, d.UserID, d.TemplateID, d.TemplateName, d.FileName, d.FileSize, d.Format, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// List returns the most recent document records, newest first.
func (s *DocumentStore) List(limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`
		SELECT id, user_id, template_id, template_name, file_name, file_size, format, created_at
		FROM documents
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.TemplateID, &d.TemplateName,
			&d.FileName, &d.FileSize, &d.Format, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// FindByFileName retrieves a document record by its stored file name.
// Returns nil if not found.
func (s *DocumentStore) FindByFileName(name string) (*Document, error) {
	d := &Document{}
	err := s.db.QueryRow(`
		SELECT id, user_id, template_id, template_name, file_name, file_size, format, created_at
		FROM documents WHERE file_name = $1
	`, name).Scan(
		&d.ID, &d.UserID, &d.TemplateID, &d.TemplateName,
		&d.FileName, &d.FileSize, &d.Format, &d.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document by file name: %w", err)
	}
	return d, nil
}
