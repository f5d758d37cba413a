package recipe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// The recipe files follow a fixed microformat-style markup: the interesting
// values are tagged with itemprop attributes and "line" paragraphs inside
// the ingredients and directions sections.
const (
	nameSelector         = `h1[itemprop="name"]`
	prepTimeSelector     = `span[itemprop="prepTime"]`
	cookTimeSelector     = `span[itemprop="cookTime"]`
	categoriesSelector   = `p[itemprop="recipeCategory"]`
	ingredientsSelector  = `div.ingredients p.line[itemprop="recipeIngredient"]`
	instructionsSelector = `div[itemprop="recipeInstructions"] p.line`
)

// Difficulty is not present in the markup; every recipe gets the default.
const defaultDifficulty = "Medium"

// ParseFile reads and parses a single recipe HTML file. The file name
// (without extension) is used as the recipe name when the markup has none.
func ParseFile(path string) (Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to read recipe file %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	fallbackName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(f, fallbackName)
}

// Parse extracts a Recipe from recipe HTML. Missing markers degrade to
// defaults or empty values; the only hard failure is an unreadable stream.
func Parse(r io.Reader, fallbackName string) (Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to parse recipe document: %w", err)
	}

	name := strings.TrimSpace(doc.Find(nameSelector).First().Text())
	if name == "" {
		name = fallbackName
	}

	prepTime := parseTimeString(doc.Find(prepTimeSelector).First().Text())
	cookTime := parseTimeString(doc.Find(cookTimeSelector).First().Text())

	var categories []string
	if raw := strings.TrimSpace(doc.Find(categoriesSelector).First().Text()); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	return Recipe{
		ID:           uuid.NewString(),
		Name:         name,
		PrepTime:     prepTime,
		CookTime:     cookTime,
		Difficulty:   defaultDifficulty,
		Ingredients:  collectLines(doc, ingredientsSelector),
		Instructions: collectLines(doc, instructionsSelector),
		Categories:   categories,
	}, nil
}

// collectLines gathers the trimmed, non-empty text of every matching line.
func collectLines(doc *goquery.Document, selector string) []string {
	var lines []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	})
	return lines
}

// parseTimeString converts strings like "30 min" or "2 hours" to minutes.
// Anything it cannot understand is 0 minutes, never an error.
func parseTimeString(timeStr string) int {
	parts := strings.Fields(strings.TrimSpace(timeStr))
	if len(parts) < 2 {
		return 0
	}

	number, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	switch {
	case strings.Contains(parts[1], "hour"):
		return number * 60
	case strings.Contains(parts[1], "min"):
		return number
	default:
		return 0
	}
}
