// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"
	"strings"
)

// Form is the tagged union of per-template input records. The wire format
// is a loose JSON object keyed by field name; ParseForm converts it into
// the strongly-typed record for the template, so everything downstream
// (prompt building, fallback text) works on named fields instead of map
// lookups that silently yield empty values for typos.
type Form interface {
	// TemplateID reports which template this form belongs to.
	TemplateID() int
}

// ServicesContractForm holds the input for a professional services contract.
type ServicesContractForm struct {
	ClientName      string
	RUC             string
	ServiceType     string
	StartDate       string
	EndDate         string
	Amount          string
	PaymentTerms    string
	Confidentiality bool
}

func (ServicesContractForm) TemplateID() int { return ServicesContract }

// NDAForm holds the input for a non-disclosure agreement.
type NDAForm struct {
	DisclosingParty string
	ReceivingParty  string
	StartDate       string
	Duration        string
	Jurisdiction    string
}

func (NDAForm) TemplateID() int { return NDA }

// PowerOfAttorneyForm holds the input for a general notarial power.
type PowerOfAttorneyForm struct {
	PrincipalName string
	PrincipalDNI  string
	AttorneyName  string
	AttorneyDNI   string
	Powers        string
	Location      string
	Date          string
}

func (PowerOfAttorneyForm) TemplateID() int { return PowerOfAttorney }

// LaborContractForm holds the input for an employment contract.
type LaborContractForm struct {
	EmployerName string
	EmployeeName string
	Position     string
	Salary       string
	StartDate    string
	WorkingHours string
	Benefits     string
}

func (LaborContractForm) TemplateID() int { return LaborContract }

// ParseForm converts the loose JSON form object into the typed record for
// the given template. Missing fields become empty strings — the document
// then simply renders without that value, matching how the wizard behaves
// when a user skips an optional field. Unknown template ids are rejected.
func ParseForm(templateID int, raw map[string]any) (Form, error) {
	switch templateID {
	case ServicesContract:
		return ServicesContractForm{
			ClientName:      stringField(raw, "clientName"),
			RUC:             stringField(raw, "ruc"),
			ServiceType:     stringField(raw, "serviceType"),
			StartDate:       stringField(raw, "startDate"),
			EndDate:         stringField(raw, "endDate"),
			Amount:          stringField(raw, "amount"),
			PaymentTerms:    stringField(raw, "paymentTerms"),
			Confidentiality: boolField(raw, "confidentiality"),
		}, nil
	case NDA:
		return NDAForm{
			DisclosingParty: stringField(raw, "disclosingParty"),
			ReceivingParty:  stringField(raw, "receivingParty"),
			StartDate:       stringField(raw, "startDate"),
			Duration:        stringField(raw, "duration"),
			Jurisdiction:    stringField(raw, "jurisdiction"),
		}, nil
	case PowerOfAttorney:
		return PowerOfAttorneyForm{
			PrincipalName: stringField(raw, "principalName"),
			PrincipalDNI:  stringField(raw, "principalDNI"),
			AttorneyName:  stringField(raw, "attorneyName"),
			AttorneyDNI:   stringField(raw, "attorneyDNI"),
			Powers:        stringField(raw, "powers"),
			Location:      stringField(raw, "location"),
			Date:          stringField(raw, "date"),
		}, nil
	case LaborContract:
		return LaborContractForm{
			EmployerName: stringField(raw, "employerName"),
			EmployeeName: stringField(raw, "employeeName"),
			Position:     stringField(raw, "position"),
			Salary:       stringField(raw, "salary"),
			StartDate:    stringField(raw, "startDate"),
			WorkingHours: stringField(raw, "workingHours"),
			Benefits:     stringField(raw, "benefits"),
		}, nil
	default:
		return nil, fmt.Errorf("template %d: %w", templateID, ErrUnknownTemplate)
	}
}

// stringField reads a form value as a trimmed string. Numbers sent by the
// frontend (e.g. amounts) are formatted without an exponent.
func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case bool:
		if val {
			return "Sí"
		}
		return "No"
	case float64:
		// encoding/json decodes all JSON numbers as float64.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// boolField reads a form value as a boolean. The wizard sends booleans, but
// older clients sent "true"/"sí" strings for checkbox fields.
func boolField(raw map[string]any, key string) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "sí", "si", "yes":
			return true
		}
	case float64:
		return val != 0
	}
	return false
}
