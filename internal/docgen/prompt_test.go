// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package docgen

import (
	"fmt"
	"strings"
	"testing"

	"legaldocs/internal/templates"
)

func TestBuildPromptIncludesAllFields(t *testing.T) {
	tests := []struct {
		name   string
		form   templates.Form
		values []string
	}{
		{
			name: "services contract",
			form: templates.ServicesContractForm{
				ClientName:   "TechStart Perú S.A.C.",
				RUC:          "20123456789",
				ServiceType:  "Consultoría Legal",
				StartDate:    "2025-12-01",
				EndDate:      "2026-12-01",
				Amount:       "15000",
				PaymentTerms: "Dos cuotas iguales",
			},
			values: []string{
				"TechStart Perú S.A.C.", "20123456789", "Consultoría Legal",
				"2025-12-01", "2026-12-01", "15000", "Dos cuotas iguales",
			},
		},
		{
			name: "nda",
			form: templates.NDAForm{
				DisclosingParty: "Acme S.A.C.",
				ReceivingParty:  "Beta E.I.R.L.",
				StartDate:       "2025-01-01",
				Duration:        "2",
				Jurisdiction:    "Lima, Perú",
			},
			values: []string{"Acme S.A.C.", "Beta E.I.R.L.", "2025-01-01", "Lima, Perú"},
		},
		{
			name: "power of attorney",
			form: templates.PowerOfAttorneyForm{
				PrincipalName: "Juan Pérez García",
				PrincipalDNI:  "45678912",
				AttorneyName:  "María López Díaz",
				AttorneyDNI:   "87654321",
				Powers:        "representación ante SUNAT",
				Location:      "Lima",
				Date:          "2025-06-15",
			},
			values: []string{"Juan Pérez García", "45678912", "María López Díaz", "87654321", "representación ante SUNAT", "Lima"},
		},
		{
			name: "labor contract",
			form: templates.LaborContractForm{
				EmployerName: "Acme Corp S.A.C.",
				EmployeeName: "Carlos Quispe",
				Position:     "Desarrollador Senior",
				Salary:       "8000",
				StartDate:    "2025-03-01",
				WorkingHours: "Lunes a viernes de 9:00 a 18:00",
				Benefits:     "Seguro médico privado",
			},
			values: []string{"Acme Corp S.A.C.", "Carlos Quispe", "Desarrollador Senior", "8000", "Lunes a viernes de 9:00 a 18:00", "Seguro médico privado"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			systemPrompt, userPrompt := BuildPrompt(tt.form)

			for _, v := range tt.values {
				if !strings.Contains(userPrompt, v) {
					t.Errorf("user prompt missing field value %q", v)
				}
			}

			req := RequirementsFor(tt.form.TemplateID())
			if !strings.Contains(systemPrompt, req.Persona) {
				t.Errorf("system prompt missing persona %q", req.Persona)
			}
			if !strings.Contains(systemPrompt, fmt.Sprintf("%d caracteres", req.MinChars)) {
				t.Error("system prompt missing minimum length requirement")
			}
			for _, section := range req.Sections {
				if !strings.Contains(systemPrompt, section) {
					t.Errorf("system prompt missing mandatory section %q", section)
				}
			}
			if !strings.Contains(systemPrompt, "ÚNICAMENTE el cuerpo del documento") {
				t.Error("system prompt missing body-only instruction")
			}
			if !strings.Contains(systemPrompt, "Markdown") {
				t.Error("system prompt missing no-markdown instruction")
			}
		})
	}
}

func TestBuildPromptTotalOnUnknownForm(t *testing.T) {
	systemPrompt, userPrompt := BuildPrompt(unknownForm{})

	if systemPrompt == "" || userPrompt == "" {
		t.Fatal("BuildPrompt must produce a usable prompt for any form")
	}
	// Unknown forms use the services-contract scheme.
	req := RequirementsFor(templates.ServicesContract)
	for _, section := range req.Sections {
		if !strings.Contains(systemPrompt, section) {
			t.Errorf("default scheme missing section %q", section)
		}
	}
}

// unknownForm simulates a form variant the builder has no case for.
type unknownForm struct{}

func (unknownForm) TemplateID() int { return 42 }
