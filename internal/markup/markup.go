// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package markup turns raw generated legal text into a structured block
// sequence that every output format renders from. The line classification
// lives in exactly one rule table so the PDF, the Word document, and the
// on-screen preview can never disagree about what is a heading, a clause
// header, or body text.
package markup

import (
	"html"
	"regexp"
	"strings"
)

// Kind classifies one line of document text.
type Kind int

const (
	// Blank is a whitespace-only line, rendered as vertical spacing.
	Blank Kind = iota
	// Heading is a section title (the document title, recitals markers).
	Heading
	// ClauseHeader opens a numbered clause ("PRIMERA: OBJETO DEL CONTRATO").
	ClauseHeader
	// SubItem is a sub-enumeration line ("1.1 ...", "a) ..."), indented.
	SubItem
	// Paragraph is any other body text, justified.
	Paragraph
)

// Block is one classified unit of document text.
type Block struct {
	Kind Kind
	Text string
}

var (
	// clauseRe matches ordinal clause openers and explicit clause labels,
	// always terminated by a colon: "PRIMERA:", "CLÁUSULA SEGUNDA:",
	// "DÉCIMO PRIMERA: ...".
	clauseRe = regexp.MustCompile(`^\s*(CL[ÁA]USULA\s+[^:]+|(?:D[ÉE]CIMO?\s+)?(?:PRIMERA|SEGUNDA|TERCERA|CUARTA|QUINTA|SEXTA|S[ÉE]PTIMA|OCTAVA|NOVENA|D[ÉE]CIMA|UND[ÉE]CIMA|DUOD[ÉE]CIMA))\s*:`)

	// subItemRe matches decimal sub-numbering ("3.1 ...") and lettered
	// enumerations ("a) ...").
	subItemRe = regexp.MustCompile(`^\s*(\d+\.\d+\.?|[a-z]\))\s+`)

	// boldRe matches paired double-asterisk spans left over from models
	// that emit Markdown emphasis despite instructions.
	boldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// fenceRe matches a code-fence line, with or without a language tag.
	fenceRe = regexp.MustCompile("^```[a-zA-Z]*\\s*$")

	// mdHeadingRe matches Markdown heading markers at the start of a line.
	mdHeadingRe = regexp.MustCompile(`^\s*#{1,6}\s+`)
)

// Classify splits cleaned content into its block sequence. Classification
// is per line and deterministic; the same input always yields the same
// blocks. Block text keeps inline bold markers; each projection decides
// whether to honor or strip them.
func Classify(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classifyLine(line))
	}
	return blocks
}

// classifyLine applies the rule table to one line. Rules match against the
// line with bold markers removed, so "**PRIMERA: OBJETO**" still classifies
// as a clause header. Order matters: clause headers are also fully
// uppercase, so they are tested before headings.
func classifyLine(line string) Block {
	trimmed := strings.TrimSpace(line)
	bare := StripBold(trimmed)
	switch {
	case bare == "":
		return Block{Kind: Blank}
	case clauseRe.MatchString(bare):
		return Block{Kind: ClauseHeader, Text: trimmed}
	case subItemRe.MatchString(bare):
		return Block{Kind: SubItem, Text: trimmed}
	case isHeadingLine(bare):
		return Block{Kind: Heading, Text: trimmed}
	default:
		return Block{Kind: Paragraph, Text: trimmed}
	}
}

// isHeadingLine reports whether a line is a section title: entirely
// uppercase (Spanish alphabet, digits and punctuation allowed), at least
// three letters long. This covers document titles ("ACUERDO DE
// CONFIDENCIALIDAD") and recitals markers ("ANTECEDENTES", "CONSIDERANDO").
func isHeadingLine(line string) bool {
	letters := 0
	for _, r := range line {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case strings.ContainsRune("áéíóúñü", r):
			return false
		case (r >= 'A' && r <= 'Z') || strings.ContainsRune("ÁÉÍÓÚÑÜ", r):
			letters++
		}
	}
	return letters >= 3
}

// StripBold removes paired double-asterisk emphasis, keeping the inner text.
func StripBold(s string) string {
	return boldRe.ReplaceAllString(s, "$1")
}

// StripArtifacts cleans generator output before classification: code
// fences, Markdown heading markers, and any conversational preamble before
// the document's title line ("Aquí tienes el contrato solicitado:"). The
// fallback generator's output passes through unchanged.
func StripArtifacts(raw string) string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	// Drop fence lines anywhere; models wrap whole documents or stray
	// fragments in them.
	kept := lines[:0]
	for _, line := range lines {
		if fenceRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, mdHeadingRe.ReplaceAllString(line, ""))
	}
	lines = kept

	// Drop a short conversational preamble: if a heading line appears
	// within the first few lines, everything before it is generator chatter,
	// not document text.
	const preambleWindow = 5
	for i, line := range lines {
		if i >= preambleWindow {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isHeadingLine(trimmed) || clauseRe.MatchString(trimmed) {
			lines = lines[i:]
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ToHTML renders cleaned content as an HTML fragment for the preview,
// using the same classification table as the file renderers. Bold spans
// become <strong>; everything else is escaped.
func ToHTML(content, title string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="legal-document">` + "\n")
	sb.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")

	for _, b := range Classify(content) {
		switch b.Kind {
		case Blank:
			sb.WriteString("<br/>\n")
		case Heading:
			sb.WriteString("<h2>" + inlineHTML(b.Text) + "</h2>\n")
		case ClauseHeader:
			sb.WriteString(`<h3 class="clause">` + inlineHTML(b.Text) + "</h3>\n")
		case SubItem:
			sb.WriteString(`<p class="sub-item">` + inlineHTML(b.Text) + "</p>\n")
		case Paragraph:
			sb.WriteString("<p>" + inlineHTML(b.Text) + "</p>\n")
		}
	}

	sb.WriteString("</div>")
	return sb.String()
}

// inlineHTML escapes a line and converts bold spans to <strong>.
func inlineHTML(line string) string {
	escaped := html.EscapeString(line)
	return boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
}
