// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"legaldocs/internal/markup"
)

var docxTestBlocks = []markup.Block{
	{Kind: markup.Heading, Text: "CONTRATO DE TRABAJO"},
	{Kind: markup.Blank},
	{Kind: markup.ClauseHeader, Text: "PRIMERA: PARTES CONTRATANTES"},
	{Kind: markup.Paragraph, Text: "Acme Corp S.A.C. contrata a Carlos Quispe."},
	{Kind: markup.SubItem, Text: "1.1 El puesto es de Desarrollador Senior."},
}

// unzipDocx opens a rendered package and returns its parts by name.
func unzipDocx(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a valid ZIP package: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestDOCXPackageParts(t *testing.T) {
	data, err := DOCX(docxTestBlocks, "Contrato Laboral")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	parts := unzipDocx(t, data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("package missing part %s", name)
		}
	}

	if !strings.Contains(parts["[Content_Types].xml"], "wordprocessingml.document.main+xml") {
		t.Error("content types missing main document override")
	}
	if !strings.Contains(parts["word/styles.xml"], "Times New Roman") {
		t.Error("styles missing default font")
	}
}

func TestDOCXDocumentContent(t *testing.T) {
	data, err := DOCX(docxTestBlocks, "Contrato Laboral")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	doc := unzipDocx(t, data)["word/document.xml"]

	for _, want := range []string{
		"Contrato Laboral",
		"CONTRATO DE TRABAJO",
		"PRIMERA: PARTES CONTRATANTES",
		"Acme Corp S.A.C. contrata a Carlos Quispe.",
		"1.1 El puesto es de Desarrollador Senior.",
		"LA PRIMERA PARTE",
		"LA SEGUNDA PARTE",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	// Clause headers are bold runs; sub-items carry the left indent.
	clauseIdx := strings.Index(doc, "PRIMERA: PARTES CONTRATANTES")
	pStart := strings.LastIndex(doc[:clauseIdx], "<w:p>")
	if pStart < 0 || !strings.Contains(doc[pStart:clauseIdx], "<w:b/>") {
		t.Error("clause header run is not bold")
	}
	if !strings.Contains(doc, `<w:ind w:left="720"/>`) {
		t.Error("sub-item missing left indent")
	}
	if !strings.Contains(doc, `<w:jc w:val="both"/>`) {
		t.Error("body paragraphs are not justified")
	}
	if !strings.Contains(doc, "<w:sectPr>") {
		t.Error("document missing section properties")
	}
}

func TestDOCXEscapesXML(t *testing.T) {
	blocks := []markup.Block{
		{Kind: markup.Paragraph, Text: `Cláusula sobre <etiquetas> & "comillas".`},
	}
	data, err := DOCX(blocks, "Contrato & Anexos")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	doc := unzipDocx(t, data)["word/document.xml"]
	if strings.Contains(doc, "<etiquetas>") {
		t.Error("unescaped markup leaked into document.xml")
	}
	for _, want := range []string{"&lt;etiquetas&gt;", "&amp;", "Contrato &amp; Anexos"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing escaped %q", want)
		}
	}
}

func TestDOCXStripsBoldMarkers(t *testing.T) {
	blocks := []markup.Block{
		{Kind: markup.ClauseHeader, Text: "**SEGUNDA: VIGENCIA**"},
	}
	data, err := DOCX(blocks, "Contrato")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	doc := unzipDocx(t, data)["word/document.xml"]
	if strings.Contains(doc, "**") {
		t.Error("bold markers leaked into document.xml")
	}
	if !strings.Contains(doc, "SEGUNDA: VIGENCIA") {
		t.Error("clause text missing after marker stripping")
	}
}

func TestDOCXDeterministic(t *testing.T) {
	first, err := DOCX(docxTestBlocks, "Contrato Laboral")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}
	second, err := DOCX(docxTestBlocks, "Contrato Laboral")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical input produced different DOCX bytes")
	}
}
