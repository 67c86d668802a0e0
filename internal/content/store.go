package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the four portfolio documents in a single
// directory. Only the registered document names are reachable, so a
// section key can never address a file outside the set.
type Store struct {
	root string // absolute path to the content directory
}

// NewStore creates a Store rooted at the given directory.
// The directory must already exist.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("content: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("content: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: root is not a directory: %s", abs)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute content directory path.
func (s *Store) Root() string { return s.root }

func (s *Store) path(sec Section) (string, error) {
	name := sec.File()
	if name == "" {
		return "", fmt.Errorf("content: unknown section %q", sec)
	}
	return filepath.Join(s.root, name), nil
}

// Read returns the raw bytes of a section document. A missing document
// surfaces as os.ErrNotExist through the wrap.
func (s *Store) Read(sec Section) ([]byte, error) {
	p, err := s.path(sec)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", sec, err)
	}
	return data, nil
}

// Exists reports whether the section document is present on disk.
func (s *Store) Exists(sec Section) bool {
	p, err := s.path(sec)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Write atomically replaces a section document: tmp file → fsync → rename.
func (s *Store) Write(sec Section, data []byte) error {
	p, err := s.path(sec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".vitrina-tmp-*")
	if err != nil {
		return fmt.Errorf("content: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("content: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("content: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("content: close temp: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("content: rename: %w", err)
	}
	success = true
	return nil
}

// WriteDoc marshals a document the way the published site stores it,
// two-space indented UTF-8 without HTML escaping, and writes it atomically.
func (s *Store) WriteDoc(sec Section, doc any) error {
	data, err := MarshalDoc(doc)
	if err != nil {
		return fmt.Errorf("content: encode %s: %w", sec, err)
	}
	return s.Write(sec, data)
}

// MarshalDoc renders a document in the canonical on-disk form.
func MarshalDoc(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
