package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration for the application.
type Config struct {
	// DBPath is the location of the SQLite database file.
	DBPath string `env:"MEAL_PLANNER_DB_PATH" envDefault:"data/mealplanner.db"`

	// RecipeDir is the directory containing recipe HTML files.
	RecipeDir string `env:"MEAL_PLANNER_RECIPE_DIR"`

	// CalendarFile is a JSON file of calendar events for the planning window.
	CalendarFile string `env:"MEAL_PLANNER_CALENDAR_FILE"`

	// TransactionsDir is the directory scanned for CSV transaction exports.
	TransactionsDir string `env:"MEAL_PLANNER_TRANSACTIONS_DIR"`

	// BookmarkPath remembers the last-used recipe and transaction directories.
	BookmarkPath string `env:"MEAL_PLANNER_BOOKMARK_PATH" envDefault:"data/bookmarks.json"`

	// PlanDays is the length of the planning window.
	PlanDays int `env:"MEAL_PLANNER_PLAN_DAYS" envDefault:"7"`
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PlanDays < 1 {
		return nil, fmt.Errorf("MEAL_PLANNER_PLAN_DAYS must be at least 1, got %d", cfg.PlanDays)
	}
	return cfg, nil
}
