package recipe

import (
	"fmt"
	"strings"
)

// Recipe represents a single parsed recipe. Recipes are immutable once
// parsed; callers treat the slices as read-only.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PrepTime     int      `json:"prep_time"` // minutes
	CookTime     int      `json:"cook_time"` // minutes
	Difficulty   string   `json:"difficulty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Categories   []string `json:"categories"`
}

// TotalTime returns the combined prep and cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// IsQuickMeal reports whether the recipe takes 30 minutes or less.
func (r Recipe) IsQuickMeal() bool {
	return r.TotalTime() <= 30
}

// IsMediumMeal reports whether the recipe takes between 31 and 60 minutes.
func (r Recipe) IsMediumMeal() bool {
	return r.TotalTime() > 30 && r.TotalTime() <= 60
}

// IsLongMeal reports whether the recipe takes more than an hour.
func (r Recipe) IsLongMeal() bool {
	return r.TotalTime() > 60
}

// IsDinner reports whether any category tag contains "Dinner".
func (r Recipe) IsDinner() bool {
	for _, c := range r.Categories {
		if strings.Contains(c, "Dinner") {
			return true
		}
	}
	return false
}

// FormattedTotalTime renders the total time as "N min" or "H hr M min".
func (r Recipe) FormattedTotalTime() string {
	total := r.TotalTime()
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	hours := total / 60
	minutes := total % 60
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}
