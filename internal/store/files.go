// Copyright (c) 2026 LegalDocs Perú <legal@legaldocs.pe>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileStore writes generated artifacts into a single directory and serves
// them back for download. Writes are write-once: file names carry a
// millisecond timestamp, and an existing name is never overwritten.
type FileStore struct {
	dir string
}

// FileInfo describes one stored artifact.
type FileInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
}

// NewFileStore creates the artifacts directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifacts dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the artifacts directory path.
func (s *FileStore) Dir() string { return s.dir }

// Save writes an artifact under the given name. Fails if the name already
// exists — stored artifacts are immutable.
func (s *FileStore) Save(name string, data []byte) error {
	if !validName(name) {
		return fmt.Errorf("save artifact: invalid file name %q", name)
	}
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	return nil
}

// Read returns the bytes of a stored artifact. The name is validated
// against path traversal before touching the filesystem.
func (s *FileStore) Read(name string) ([]byte, error) {
	if !validName(name) {
		return nil, fmt.Errorf("read artifact: invalid file name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

// List returns all stored artifacts, newest first.
func (s *FileStore) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, FileInfo{
			Name:    e.Name(),
			Size:    fi.Size(),
			Created: fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Created.After(infos[j].Created)
	})
	return infos, nil
}

// validName accepts only bare file names: no separators, no parent
// references, nothing hidden.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return false
	}
	return true
}
