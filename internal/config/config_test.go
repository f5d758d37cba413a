package config

import "testing"

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "data/mealplanner.db" {
			t.Errorf("Expected default DB path, got %q", cfg.DBPath)
		}
		if cfg.BookmarkPath != "data/bookmarks.json" {
			t.Errorf("Expected default bookmark path, got %q", cfg.BookmarkPath)
		}
		if cfg.PlanDays != 7 {
			t.Errorf("Expected 7 plan days, got %d", cfg.PlanDays)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("MEAL_PLANNER_DB_PATH", "/tmp/other.db")
		t.Setenv("MEAL_PLANNER_RECIPE_DIR", "/tmp/recipes")
		t.Setenv("MEAL_PLANNER_PLAN_DAYS", "14")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "/tmp/other.db" {
			t.Errorf("Expected overridden DB path, got %q", cfg.DBPath)
		}
		if cfg.RecipeDir != "/tmp/recipes" {
			t.Errorf("Expected recipe dir, got %q", cfg.RecipeDir)
		}
		if cfg.PlanDays != 14 {
			t.Errorf("Expected 14 plan days, got %d", cfg.PlanDays)
		}
	})

	t.Run("RejectsZeroPlanDays", func(t *testing.T) {
		t.Setenv("MEAL_PLANNER_PLAN_DAYS", "0")
		if _, err := NewFromEnv(); err == nil {
			t.Error("Expected an error for zero plan days")
		}
	})
}
