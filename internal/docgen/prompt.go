// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package docgen

import (
	"fmt"
	"strings"

	"legaldocs/internal/templates"
)

// BuildPrompt produces the system and user prompts for a form. It is pure
// and total: every field value appears verbatim in the user prompt, and the
// system prompt carries the persona, the minimum length, the mandatory
// clause list, and the body-only output rules. Forms outside the known
// union get the services-contract scheme.
func BuildPrompt(form templates.Form) (systemPrompt, userPrompt string) {
	req := RequirementsFor(form.TemplateID())

	var docKind string
	var data strings.Builder

	switch f := form.(type) {
	case templates.ServicesContractForm:
		docKind = "un contrato de servicios profesionales"
		field(&data, "Cliente", f.ClientName)
		field(&data, "RUC", f.RUC)
		field(&data, "Tipo de servicio", f.ServiceType)
		field(&data, "Fecha de inicio", f.StartDate)
		field(&data, "Fecha de término", f.EndDate)
		field(&data, "Monto (S/.)", f.Amount)
		field(&data, "Condiciones de pago", f.PaymentTerms)
		field(&data, "Incluir cláusula de confidencialidad", yesNo(f.Confidentiality))
	case templates.NDAForm:
		docKind = "un acuerdo de confidencialidad (NDA)"
		field(&data, "Parte divulgadora", f.DisclosingParty)
		field(&data, "Parte receptora", f.ReceivingParty)
		field(&data, "Fecha de inicio", f.StartDate)
		field(&data, "Duración en años", f.Duration)
		field(&data, "Jurisdicción", f.Jurisdiction)
	case templates.PowerOfAttorneyForm:
		docKind = "un poder notarial general"
		field(&data, "Poderdante", f.PrincipalName)
		field(&data, "DNI del poderdante", f.PrincipalDNI)
		field(&data, "Apoderado", f.AttorneyName)
		field(&data, "DNI del apoderado", f.AttorneyDNI)
		field(&data, "Facultades", f.Powers)
		field(&data, "Lugar de otorgamiento", f.Location)
		field(&data, "Fecha", f.Date)
	case templates.LaborContractForm:
		docKind = "un contrato de trabajo bajo el régimen laboral peruano"
		field(&data, "Empleador", f.EmployerName)
		field(&data, "Trabajador", f.EmployeeName)
		field(&data, "Puesto", f.Position)
		field(&data, "Remuneración mensual (S/.)", f.Salary)
		field(&data, "Fecha de inicio", f.StartDate)
		field(&data, "Jornada de trabajo", f.WorkingHours)
		field(&data, "Beneficios", f.Benefits)
	default:
		docKind = "un contrato de servicios profesionales"
		data.WriteString(fmt.Sprintf("Datos del documento: %+v\n", form))
	}

	systemPrompt = fmt.Sprintf(`Eres un %s. Redactas documentos legales formales en español, listos para firma.

Reglas de salida:
- Escribe ÚNICAMENTE el cuerpo del documento. Sin saludos, sin comentarios, sin notas y sin bloques de código Markdown.
- El documento debe tener como mínimo %d caracteres.
- Usa títulos de sección en mayúsculas y cláusulas numeradas con ordinales en mayúsculas seguidos de dos puntos (PRIMERA:, SEGUNDA:, ...).
- El documento debe incluir, como mínimo y en este orden, las siguientes secciones:
%s
- Cierra con la fecha y un espacio de firmas para ambas partes.`,
		req.Persona, req.MinChars, sectionList(req.Sections))

	userPrompt = fmt.Sprintf("Redacta %s con los siguientes datos:\n%s", docKind, data.String())
	return systemPrompt, userPrompt
}

// field appends one "Label: value" line to the prompt data.
func field(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "%s: %s\n", label, value)
}

// sectionList formats the mandatory sections as a numbered list.
func sectionList(sections []string) string {
	var sb strings.Builder
	for i, s := range sections {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, s)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
