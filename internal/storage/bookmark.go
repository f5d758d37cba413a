// Package storage keeps small file-based state that does not belong in the
// database, currently the remembered source directories.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Bookmarks remembers the directories the user last imported from, standing
// in for the platform's directory-access bookmark.
type Bookmarks struct {
	RecipeDir       string `json:"recipe_dir,omitempty"`
	TransactionsDir string `json:"transactions_dir,omitempty"`
}

// BookmarkStore reads and writes Bookmarks as a JSON file.
type BookmarkStore struct {
	path string
}

// NewBookmarkStore creates a store at path and ensures its directory exists.
func NewBookmarkStore(path string) (*BookmarkStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create bookmark directory: %w", err)
	}
	return &BookmarkStore{path: path}, nil
}

// Load returns the saved bookmarks; a missing file yields empty bookmarks.
func (s *BookmarkStore) Load() (Bookmarks, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Bookmarks{}, nil
		}
		return Bookmarks{}, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	var b Bookmarks
	if err := json.Unmarshal(data, &b); err != nil {
		return Bookmarks{}, fmt.Errorf("failed to unmarshal bookmarks: %w", err)
	}
	return b, nil
}

// Save writes the bookmarks to disk.
func (s *BookmarkStore) Save(b Bookmarks) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write bookmarks: %w", err)
	}
	return nil
}
