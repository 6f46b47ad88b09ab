package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"forgefinds/dealworker/internal/deal"
)

// ErrNotCollection marks a persisted document that is not a JSON array
// of deal records. This is an upstream contract violation (a corrupted
// file), not a data-quality issue, so callers should fail the run
// rather than overwrite the document.
var ErrNotCollection = errors.New("persisted deals document is not a JSON array of records")

// Store persists the deal collection as a single pretty-printed JSON
// array on disk.
type Store struct {
	path string
}

// New creates a store backed by the JSON document at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. A missing file means a fresh
// start and yields an empty collection; a document that cannot be
// decoded as an array of records fails with ErrNotCollection.
func (s *Store) Load() ([]deal.Deal, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var deals []deal.Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotCollection, s.path, err)
	}
	return deals, nil
}

// Save atomically replaces the persisted document: the collection is
// written to a temp file in the same directory and renamed over the
// target, so readers never observe a partial write.
func (s *Store) Save(deals []deal.Deal) error {
	if deals == nil {
		deals = []deal.Deal{}
	}

	data, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deals: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".deals-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
