package recipe

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LoadSummary reports the outcome of a directory load in aggregate.
type LoadSummary struct {
	Found  int
	Loaded int
	Failed int
}

// LoadDirectory parses every HTML file in dir. A file that fails to parse is
// logged and skipped; a bad recipe never aborts the batch.
func LoadDirectory(dir string) ([]Recipe, LoadSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, LoadSummary{}, fmt.Errorf("failed to read recipe directory %s: %w", dir, err)
	}

	var recipes []Recipe
	var summary LoadSummary

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			continue
		}
		summary.Found++

		rec, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			summary.Failed++
			log.Printf("Failed to parse recipe file %s: %v", entry.Name(), err)
			continue
		}

		recipes = append(recipes, rec)
		summary.Loaded++
	}

	return recipes, summary, nil
}
