// Package grocery derives a deduplicated shopping list from recipes.
package grocery

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"quick-meal-planner/internal/recipe"
)

// Item is a single grocery list entry. Names are unique case-insensitively
// within one generation of the list.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Quantity    string   `json:"quantity"`
	Checked     bool     `json:"is_checked"`
	RecipeNames []string `json:"recipe_names"`
}

// List is a generated shopping list, ordered case-insensitively by name.
// Regeneration rebuilds it from scratch, so checked state only survives
// within a single generation.
type List struct {
	ID          string    `json:"id"`
	Items       []Item    `json:"items"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Quantities absorb a leading unit word from this vocabulary.
var measurementUnits = []string{
	"cup", "cups",
	"tablespoon", "tablespoons", "tbsp",
	"teaspoon", "teaspoons", "tsp",
	"ounce", "ounces", "oz",
	"pound", "pounds", "lb", "lbs",
	"gram", "grams", "g",
	"kilogram", "kilograms", "kg",
	"ml", "milliliter", "milliliters",
	"l", "liter", "liters",
}

// Generate builds a fresh list from the given recipes. Quantities across
// recipes are not summed; a collision keeps the first-seen quantity and adds
// the new recipe to the item's attribution.
func Generate(recipes []recipe.Recipe) List {
	var items []Item
	index := map[string]int{} // lowercased name -> position in items

	for _, rec := range recipes {
		for _, line := range rec.Ingredients {
			name, quantity := parseIngredient(line)
			if name == "" {
				continue
			}

			key := strings.ToLower(name)
			if at, ok := index[key]; ok {
				if !containsString(items[at].RecipeNames, rec.Name) {
					items[at].RecipeNames = append(items[at].RecipeNames, rec.Name)
				}
				continue
			}

			index[key] = len(items)
			items = append(items, Item{
				ID:          uuid.NewString(),
				Name:        name,
				Quantity:    quantity,
				RecipeNames: []string{rec.Name},
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	return List{
		ID:          uuid.NewString(),
		Items:       items,
		GeneratedAt: time.Now().UTC(),
	}
}

// Toggle flips the checked state of the item with the given ID and reports
// whether it was found.
func (l *List) Toggle(itemID string) bool {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items[i].Checked = !l.Items[i].Checked
			return true
		}
	}
	return false
}

// ClearChecked removes every checked item from the list.
func (l *List) ClearChecked() {
	kept := l.Items[:0]
	for _, item := range l.Items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	l.Items = kept
}

// parseIngredient splits an ingredient line into a name and a quantity.
// Lines with at least two tokens treat the first as the quantity; a
// recognized unit word following it is absorbed into the quantity. Shorter
// lines become a bare name with no quantity.
func parseIngredient(line string) (name, quantity string) {
	clean := strings.ReplaceAll(line, "<strong>", "")
	clean = strings.ReplaceAll(clean, "</strong>", "")
	clean = strings.TrimSpace(clean)

	parts := strings.Fields(clean)
	if len(parts) < 2 {
		return clean, ""
	}

	quantity = parts[0]
	rest := parts[1:]

	// A recognized unit word right after the number belongs to the quantity,
	// not the name.
	if len(rest) > 1 && isUnit(rest[0]) {
		quantity = quantity + " " + rest[0]
		rest = rest[1:]
	}
	return strings.Join(rest, " "), quantity
}

func isUnit(word string) bool {
	w := strings.ToLower(word)
	for _, unit := range measurementUnits {
		if w == unit {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
