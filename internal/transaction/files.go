package transaction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Files lists importable CSV exports in a directory and moves imported
// files out of the way.
type Files struct {
	dir string
}

// NewFiles creates a Files manager rooted at dir.
func NewFiles(dir string) *Files {
	return &Files{dir: dir}
}

// Available returns the CSV files waiting to be imported.
func (f *Files) Available() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions directory %s: %w", f.dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, filepath.Join(f.dir, entry.Name()))
		}
	}
	return files, nil
}

// MarkProcessed moves an imported file into a processed/ subdirectory so it
// is not imported twice.
func (f *Files) MarkProcessed(path string) error {
	processedDir := filepath.Join(f.dir, "processed")
	if err := os.MkdirAll(processedDir, 0755); err != nil {
		return fmt.Errorf("failed to create processed directory: %w", err)
	}

	dest := filepath.Join(processedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to move %s to processed: %w", filepath.Base(path), err)
	}
	return nil
}
