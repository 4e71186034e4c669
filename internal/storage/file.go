package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/addressbook/internal/addressbook"
)

// document is the top-level YAML layout.
type document struct {
	Persons []record `yaml:"persons"`
	Tags    []string `yaml:"tags,omitempty"`
}

// FileStore persists the book as a single YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for path, which must end in .yaml or .yml.
func NewFileStore(path string) (*FileStore, error) {
	if err := checkExt(path, ".yaml", ".yml"); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the storage file path.
func (s *FileStore) Path() string { return s.path }

// Close is a no-op; the file is not held open between calls.
func (s *FileStore) Close() error { return nil }

// Save writes the whole book, creating parent directories as needed.
func (s *FileStore) Save(book *addressbook.AddressBook) error {
	doc := document{Tags: tagNames(book)}
	for _, p := range book.AllPersons() {
		doc.Persons = append(doc.Persons, toRecord(p))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("storage: marshaling: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: creating directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads the book. A missing file yields an empty book.
func (s *FileStore) Load() (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return addressbook.New(), nil
		}
		return nil, fmt.Errorf("storage: reading %s: %w", s.path, err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return addressbook.New(), nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.path, err)
	}
	return buildBook(s.path, doc.Persons, doc.Tags)
}
