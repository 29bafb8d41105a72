// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package store

import (
	"bytes"
	"testing"
)

func TestFileStoreSaveAndRead(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	data := []byte("%PDF-1.4 contenido")
	if err := s.Save("Contrato_Laboral_1736937000000.pdf", data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Read("Contrato_Laboral_1736937000000.pdf")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Read returned different bytes than Save stored")
	}
}

func TestFileStoreWriteOnce(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Save("doc.pdf", []byte("original")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("doc.pdf", []byte("sobrescrito")); err == nil {
		t.Fatal("Save over an existing artifact must fail")
	}

	got, err := s.Read("doc.pdf")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "original" {
		t.Error("stored artifact was modified")
	}
}

func TestFileStoreRejectsUnsafeNames(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	unsafe := []string{
		"",
		".",
		"..",
		".hidden",
		"../escape.pdf",
		"..\\escape.pdf",
		"sub/dir.pdf",
		"/etc/passwd",
	}
	for _, name := range unsafe {
		if err := s.Save(name, []byte("x")); err == nil {
			t.Errorf("Save(%q) accepted an unsafe name", name)
		}
		if _, err := s.Read(name); err == nil {
			t.Errorf("Read(%q) accepted an unsafe name", name)
		}
	}
}

func TestFileStoreList(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	for _, name := range []string{"a.pdf", "b.docx", "c.pdf"} {
		if err := s.Save(name, []byte("contenido")); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("List: got %d files, want 3", len(infos))
	}
	for _, fi := range infos {
		if fi.Size != int64(len("contenido")) {
			t.Errorf("%s: Size = %d", fi.Name, fi.Size)
		}
		if fi.Created.IsZero() {
			t.Errorf("%s: zero Created time", fi.Name)
		}
	}
	// Newest first.
	for i := 1; i < len(infos); i++ {
		if infos[i].Created.After(infos[i-1].Created) {
			t.Error("List is not sorted newest first")
		}
	}
}
