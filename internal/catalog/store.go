package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/faizmokh/curtaincall/internal/files"
)

// Store reads and replaces collection.json through the shared files.Manager.
type Store struct {
	manager *files.Manager
}

// NewStore wires a store using the shared files.Manager.
func NewStore(manager *files.Manager) *Store {
	return &Store{manager: manager}
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.manager.CollectionPath()
}

// Load reads every entry from collection.json.
func (s *Store) Load(ctx context.Context) ([]Entry, error) {
	if s == nil || s.manager == nil {
		return nil, errors.New("store not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.manager.CollectionPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.manager.CollectionPath())
		}
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}

// Save replaces collection.json with entries, indented for diffing.
func (s *Store) Save(ctx context.Context, entries []Entry) error {
	if s == nil || s.manager == nil {
		return errors.New("store not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := s.manager.WriteFile(s.manager.CollectionPath(), buf.Bytes()); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// Decode parses a collection.json document.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return entries, nil
}
