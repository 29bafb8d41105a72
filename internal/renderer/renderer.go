// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

// Package renderer turns a classified block sequence into downloadable
// artifacts. Both renderers consume the same markup.Block kinds, so a
// clause header is bold in the PDF exactly when it is bold in the Word
// document. Renderers are pure: blocks in, bytes out, no I/O.
package renderer

import "time"

// MIME types for the supported artifact formats.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Artifact is a rendered document ready for transfer: the full byte
// stream, the download file name, the MIME type, and the generation
// instant (the same one embedded in the file name).
type Artifact struct {
	Bytes     []byte
	FileName  string
	MIME      string
	CreatedAt time.Time
}

// Size returns the artifact length in bytes.
func (a *Artifact) Size() int64 {
	return int64(len(a.Bytes))
}

// signature labels shared by both renderers. The closing signature area is
// part of the document layout, not of the generated content, so it renders
// identically regardless of which path produced the text.
var signatureLabels = [2]string{"LA PRIMERA PARTE", "LA SEGUNDA PARTE"}

const signatureRule = "________________________"
