// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"legaldocs/internal/markup"
)

// DOCX renders a block sequence as a Word document (an OOXML package built
// fully in memory). Headings and clause headers carry bold runs and the
// matching alignment, sub-items carry a left indent, and body paragraphs
// are justified, mirroring the PDF layout through the same block kinds.
func DOCX(blocks []markup.Block, title string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := map[string]string{
		"[Content_Types].xml":          docxContentTypes,
		"_rels/.rels":                  docxRels,
		"word/_rels/document.xml.rels": docxDocumentRels,
		"word/styles.xml":              docxStyles,
		"word/document.xml":            buildDocumentXML(blocks, title),
	}

	// Fixed part order keeps the package byte-stable for identical input.
	for _, name := range []string{
		"[Content_Types].xml", "_rels/.rels",
		"word/_rels/document.xml.rels", "word/styles.xml", "word/document.xml",
	} {
		entry, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("render docx: create %s: %w", name, err)
		}
		if _, err := entry.Write([]byte(parts[name])); err != nil {
			return nil, fmt.Errorf("render docx: write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("render docx: close package: %w", err)
	}
	return buf.Bytes(), nil
}

// buildDocumentXML assembles word/document.xml from the block sequence.
func buildDocumentXML(blocks []markup.Block, title string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
`)

	sb.WriteString(paragraphXML(title, paraOpts{bold: true, align: "center", size: 28, spaceAfter: 240}))

	for _, b := range blocks {
		text := markup.StripBold(b.Text)
		switch b.Kind {
		case markup.Blank:
			sb.WriteString("    <w:p/>\n")
		case markup.Heading:
			sb.WriteString(paragraphXML(text, paraOpts{bold: true, align: "center", size: 24, spaceBefore: 160}))
		case markup.ClauseHeader:
			sb.WriteString(paragraphXML(text, paraOpts{bold: true, size: 22, spaceBefore: 120}))
		case markup.SubItem:
			sb.WriteString(paragraphXML(text, paraOpts{align: "both", size: 22, indent: 720}))
		case markup.Paragraph:
			sb.WriteString(paragraphXML(text, paraOpts{align: "both", size: 22}))
		}
	}

	// Closing signature area: two labelled signature lines.
	sb.WriteString("    <w:p/>\n    <w:p/>\n")
	for i := range signatureLabels {
		sb.WriteString(paragraphXML(signatureRule, paraOpts{align: "center", size: 22, spaceBefore: 240}))
		sb.WriteString(paragraphXML(signatureLabels[i], paraOpts{bold: true, align: "center", size: 20}))
	}

	// A4 page: 11906x16838 twentieths of a point, 1 inch margins.
	sb.WriteString(`    <w:sectPr>
      <w:pgSz w:w="11906" w:h="16838"/>
      <w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/>
    </w:sectPr>
  </w:body>
</w:document>`)
	return sb.String()
}

// paraOpts controls the paragraph and run properties emitted for one block.
type paraOpts struct {
	bold        bool
	align       string // "", "center", "both"
	size        int    // half-points
	indent      int    // twentieths of a point, left
	spaceBefore int
	spaceAfter  int
}

// paragraphXML emits one <w:p> with its properties and a single run.
func paragraphXML(text string, o paraOpts) string {
	var sb strings.Builder
	sb.WriteString("    <w:p>\n      <w:pPr>\n")
	if o.spaceBefore > 0 || o.spaceAfter > 0 {
		fmt.Fprintf(&sb, `        <w:spacing w:before="%d" w:after="%d" w:line="360" w:lineRule="auto"/>`+"\n", o.spaceBefore, o.spaceAfter)
	} else {
		sb.WriteString(`        <w:spacing w:line="360" w:lineRule="auto"/>` + "\n")
	}
	if o.indent > 0 {
		fmt.Fprintf(&sb, `        <w:ind w:left="%d"/>`+"\n", o.indent)
	}
	if o.align != "" {
		fmt.Fprintf(&sb, `        <w:jc w:val="%s"/>`+"\n", o.align)
	}
	sb.WriteString("      </w:pPr>\n      <w:r>\n        <w:rPr>\n")
	if o.bold {
		sb.WriteString("          <w:b/>\n")
	}
	if o.size > 0 {
		fmt.Fprintf(&sb, `          <w:sz w:val="%d"/>`+"\n", o.size)
	}
	sb.WriteString("        </w:rPr>\n")
	fmt.Fprintf(&sb, `        <w:t xml:space="preserve">%s</w:t>`+"\n", escapeXML(text))
	sb.WriteString("      </w:r>\n    </w:p>\n")
	return sb.String()
}

// escapeXML escapes the five XML special characters in text content.
func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Static OOXML package parts.

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman"/>
        <w:sz w:val="22"/>
      </w:rPr>
    </w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:spacing w:after="0" w:line="360" w:lineRule="auto"/>
    </w:pPr>
  </w:style>
</w:styles>`
