// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"legaldocs/internal/markup"
)

// PDF layout constants, in millimeters on an A4 page.
const (
	pdfMargin     = 25.0
	pdfLineHeight = 6.0
	subItemIndent = 8.0
)

// PDF renders a block sequence as a complete PDF byte stream: centered
// bold title, centered bold headings, bold clause headers, indented
// sub-items, justified paragraphs, and a closing signature area. The
// stream is fully written before returning; any underlying write error
// surfaces as a render failure.
func PDF(blocks []markup.Block, title string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	// Content streams stay uncompressed so stored artifacts remain
	// text-searchable by external tooling.
	pdf.SetCompression(false)
	pdf.AddPage()

	// Core fonts are cp1252; translate UTF-8 input (tildes, eñes).
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.MultiCell(0, 8, tr(title), "", "C", false)
	pdf.Ln(4)

	for _, b := range blocks {
		text := tr(markup.StripBold(b.Text))
		switch b.Kind {
		case markup.Blank:
			pdf.Ln(pdfLineHeight / 2)
		case markup.Heading:
			pdf.SetFont("Arial", "B", 12)
			pdf.MultiCell(0, pdfLineHeight+1, text, "", "C", false)
		case markup.ClauseHeader:
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, pdfLineHeight, text, "", "L", false)
		case markup.SubItem:
			pdf.SetFont("Arial", "", 11)
			pdf.SetLeftMargin(pdfMargin + subItemIndent)
			pdf.SetX(pdfMargin + subItemIndent)
			pdf.MultiCell(0, pdfLineHeight, text, "", "J", false)
			pdf.SetLeftMargin(pdfMargin)
			pdf.SetX(pdfMargin)
		case markup.Paragraph:
			pdf.SetFont("Arial", "", 11)
			pdf.MultiCell(0, pdfLineHeight, text, "", "J", false)
		}
	}

	writeSignatureArea(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSignatureArea appends two labelled signature lines side by side.
func writeSignatureArea(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.Ln(20)
	pdf.SetFont("Arial", "", 11)

	// A4 content width with 25mm margins is 160mm: two 75mm columns and a
	// 10mm gap.
	pdf.CellFormat(75, pdfLineHeight, signatureRule, "", 0, "C", false, 0, "")
	pdf.CellFormat(10, pdfLineHeight, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(75, pdfLineHeight, signatureRule, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(75, pdfLineHeight, tr(signatureLabels[0]), "", 0, "C", false, 0, "")
	pdf.CellFormat(10, pdfLineHeight, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(75, pdfLineHeight, tr(signatureLabels[1]), "", 1, "C", false, 0, "")
}
