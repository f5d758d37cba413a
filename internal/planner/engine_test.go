package planner

import (
	"testing"
	"time"

	"quick-meal-planner/internal/recipe"
	"quick-meal-planner/internal/schedule"
)

// firstPick always selects index 0, making bucket choice observable.
func firstPick(int) int { return 0 }

func dinner(name string, total int) recipe.Recipe {
	return recipe.Recipe{ID: name, Name: name, PrepTime: total, Categories: []string{"Dinner"}}
}

func testPool() []recipe.Recipe {
	return []recipe.Recipe{
		dinner("quick-stir-fry", 20),
		dinner("weeknight-pasta", 45),
		dinner("sunday-roast", 90),
		{ID: "pancakes", Name: "pancakes", PrepTime: 10, Categories: []string{"Breakfast"}},
	}
}

func dayAt(date time.Time, events ...schedule.CalendarEvent) schedule.DaySchedule {
	return schedule.NewDaySchedule(date, events)
}

func TestGenerate(t *testing.T) {
	engine := NewEngine(firstPick)
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	cook := func(h, m int) schedule.CalendarEvent {
		return schedule.CalendarEvent{
			Title: "Cook Dinner",
			Start: time.Date(2024, 3, 4, h, m, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 4, h, m+30, 0, 0, time.UTC),
		}
	}

	t.Run("EarlyCookingPrefersQuick", func(t *testing.T) {
		days := engine.Generate([]schedule.DaySchedule{dayAt(base, cook(15, 0))}, testPool())
		if days[0].Recommended == nil || days[0].Recommended.Name != "quick-stir-fry" {
			t.Errorf("Expected quick meal for early cooking, got %v", days[0].Recommended)
		}
	})

	t.Run("FreeEveningPrefersLong", func(t *testing.T) {
		days := engine.Generate([]schedule.DaySchedule{dayAt(base)}, testPool())
		if days[0].Recommended == nil || days[0].Recommended.Name != "sunday-roast" {
			t.Errorf("Expected long meal for a free evening, got %v", days[0].Recommended)
		}
	})

	t.Run("MediumGapPrefersMedium", func(t *testing.T) {
		next := schedule.CalendarEvent{
			Title: "Movie",
			Start: time.Date(2024, 3, 4, 18, 15, 0, 0, time.UTC),
		}
		days := engine.Generate([]schedule.DaySchedule{dayAt(base, cook(17, 0), next)}, testPool())
		if days[0].Recommended == nil || days[0].Recommended.Name != "weeknight-pasta" {
			t.Errorf("Expected medium meal for a 45 minute gap, got %v", days[0].Recommended)
		}
	})

	t.Run("FallsThroughEmptyBuckets", func(t *testing.T) {
		pool := []recipe.Recipe{dinner("quick-stir-fry", 20)}
		days := engine.Generate([]schedule.DaySchedule{dayAt(base)}, pool)
		if days[0].Recommended == nil || days[0].Recommended.Name != "quick-stir-fry" {
			t.Errorf("Expected fall-through to the quick bucket, got %v", days[0].Recommended)
		}
	})

	t.Run("NeverAssignsNonDinner", func(t *testing.T) {
		days := make([]schedule.DaySchedule, 7)
		for i := range days {
			days[i] = dayAt(base.AddDate(0, 0, i))
		}

		plan := engine.Generate(days, testPool())
		for _, day := range plan {
			if day.Recommended != nil && !day.Recommended.IsDinner() {
				t.Errorf("Assigned non-dinner recipe %s", day.Recommended.Name)
			}
		}
	})

	t.Run("EmptyPoolLeavesDaysUnassigned", func(t *testing.T) {
		days := make([]schedule.DaySchedule, 7)
		for i := range days {
			days[i] = dayAt(base.AddDate(0, 0, i))
		}

		plan := engine.Generate(days, nil)
		if len(plan) != 7 {
			t.Fatalf("Expected 7 days back, got %d", len(plan))
		}
		for _, day := range plan {
			if day.Recommended != nil {
				t.Errorf("Expected unassigned day, got %s", day.Recommended.Name)
			}
		}
	})

	t.Run("NonDinnerOnlyPoolLeavesDaysUnassigned", func(t *testing.T) {
		pool := []recipe.Recipe{{ID: "pancakes", Name: "pancakes", Categories: []string{"Breakfast"}}}
		plan := engine.Generate([]schedule.DaySchedule{dayAt(base)}, pool)
		if plan[0].Recommended != nil {
			t.Errorf("Expected unassigned day, got %s", plan[0].Recommended.Name)
		}
	})
}

func TestReshuffleAndClear(t *testing.T) {
	engine := NewEngine(firstPick)
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	days := []schedule.DaySchedule{dayAt(base), dayAt(base.AddDate(0, 0, 1))}
	plan := WeeklyPlan{Days: engine.Generate(days, testPool())}

	secondDayBefore := plan.Days[1].Recommended

	engine.ClearDay(&plan, base)
	if plan.Days[0].Recommended != nil {
		t.Error("Expected cleared day to be unassigned")
	}
	if plan.Days[1].Recommended != secondDayBefore {
		t.Error("Expected the other day to be untouched")
	}

	engine.ReshuffleDay(&plan, base, testPool())
	if plan.Days[0].Recommended == nil {
		t.Fatal("Expected reshuffled day to get a recipe")
	}
	if !plan.Days[0].Recommended.IsDinner() {
		t.Errorf("Reshuffle assigned non-dinner recipe %s", plan.Days[0].Recommended.Name)
	}
}

func TestRecommendQuotas(t *testing.T) {
	engine := NewEngine(firstPick)
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	days := make([]schedule.DaySchedule, 7)
	for i := range days {
		days[i] = dayAt(base.AddDate(0, 0, i))
	}

	plan := engine.Recommend(days, testPool())

	var long int
	for _, day := range plan {
		if day.Recommended == nil {
			t.Fatal("Expected every day assigned with a full pool")
		}
		if !day.Recommended.IsDinner() {
			t.Errorf("Assigned non-dinner recipe %s", day.Recommended.Name)
		}
		if day.Recommended.IsLongMeal() {
			long++
		}
	}
	if long < minLongMealsPerWeek {
		t.Errorf("Expected at least %d long meal, got %d", minLongMealsPerWeek, long)
	}
}
