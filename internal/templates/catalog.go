// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package templates defines the static catalog of legal document templates
// and the typed form records that carry the user's input for each one.
package templates

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned when a template id is not in the catalog.
var ErrUnknownTemplate = errors.New("unknown template")

// Template describes one legal document kind: its identity, display
// metadata, and the ordered list of form fields it requires.
type Template struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

// Template ids. Stable — they identify templates in API requests and in
// stored document records.
const (
	ServicesContract = 1
	NDA              = 2
	PowerOfAttorney  = 3
	LaborContract    = 4
)

// catalog is the fixed set of supported templates, in display order.
var catalog = []Template{
	{
		ID:          ServicesContract,
		Name:        "Contrato de Servicios Profesionales",
		Category:    "Contratos",
		Description: "Contrato estándar para prestación de servicios profesionales",
		Fields: []string{
			"clientName", "ruc", "serviceType", "startDate",
			"endDate", "amount", "paymentTerms", "confidentiality",
		},
	},
	{
		ID:          NDA,
		Name:        "Acuerdo de Confidencialidad (NDA)",
		Category:    "NDAs",
		Description: "Acuerdo para proteger información confidencial",
		Fields: []string{
			"disclosingParty", "receivingParty", "startDate",
			"duration", "jurisdiction",
		},
	},
	{
		ID:          PowerOfAttorney,
		Name:        "Poder Notarial General",
		Category:    "Poderes",
		Description: "Poder notarial para representación legal",
		Fields: []string{
			"principalName", "principalDNI", "attorneyName",
			"attorneyDNI", "powers", "location", "date",
		},
	},
	{
		ID:          LaborContract,
		Name:        "Contrato Laboral",
		Category:    "Contratos",
		Description: "Contrato de trabajo bajo régimen laboral",
		Fields: []string{
			"employerName", "employeeName", "position", "salary",
			"startDate", "workingHours", "benefits",
		},
	},
}

// Catalog provides read-only access to the template set.
type Catalog struct {
	byID map[int]*Template
	list []Template
}

// NewCatalog builds the catalog. The template set is fixed at compile time;
// the constructor exists so callers receive an explicit dependency rather
// than reaching into package state.
func NewCatalog() *Catalog {
	c := &Catalog{
		byID: make(map[int]*Template, len(catalog)),
		list: catalog,
	}
	for i := range c.list {
		c.byID[c.list[i].ID] = &c.list[i]
	}
	return c
}

// Get returns the template with the given id, or ErrUnknownTemplate.
func (c *Catalog) Get(id int) (*Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, ErrUnknownTemplate)
	}
	return t, nil
}

// List returns all templates in display order.
func (c *Catalog) List() []Template {
	return c.list
}
