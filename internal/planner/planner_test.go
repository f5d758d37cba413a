package planner

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"quick-meal-planner/internal/database"
	"quick-meal-planner/internal/schedule"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func weekFrom(base time.Time) []schedule.DaySchedule {
	days := make([]schedule.DaySchedule, 7)
	for i := range days {
		days[i] = schedule.NewDaySchedule(base.AddDate(0, 0, i), nil)
	}
	return days
}

func TestGeneratePlanArchivesPrevious(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewRepository(db.SQL)
	p := NewPlanner(NewEngine(firstPick), repo)

	firstWeek := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	secondWeek := firstWeek.AddDate(0, 0, 7)

	// First plan: nothing to archive yet.
	if _, err := p.GeneratePlan(ctx, weekFrom(firstWeek), testPool()); err != nil {
		t.Fatalf("First GeneratePlan failed: %v", err)
	}
	history, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("Expected empty history after first plan, got %d entries", len(history))
	}

	// Second plan archives the first.
	if _, err := p.GeneratePlan(ctx, weekFrom(secondWeek), testPool()); err != nil {
		t.Fatalf("Second GeneratePlan failed: %v", err)
	}
	history, err = repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 archived plan, got %d", len(history))
	}

	archived := history[0]
	if !schedule.SameDay(archived.StartDate, firstWeek) {
		t.Errorf("Expected archive start %v, got %v", firstWeek, archived.StartDate)
	}
	if !schedule.SameDay(archived.EndDate, firstWeek.AddDate(0, 0, 6)) {
		t.Errorf("Expected archive end %v, got %v", firstWeek.AddDate(0, 0, 6), archived.EndDate)
	}

	// Third plan: history stays sorted newest first.
	thirdWeek := secondWeek.AddDate(0, 0, 7)
	if _, err := p.GeneratePlan(ctx, weekFrom(thirdWeek), testPool()); err != nil {
		t.Fatalf("Third GeneratePlan failed: %v", err)
	}
	history, err = repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 archived plans, got %d", len(history))
	}
	if !history[0].StartDate.After(history[1].StartDate) {
		t.Errorf("Expected history sorted newest first: %v then %v", history[0].StartDate, history[1].StartDate)
	}
}

func TestReshuffleAndClearPersist(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewRepository(db.SQL)
	p := NewPlanner(NewEngine(firstPick), repo)

	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	if _, err := p.GeneratePlan(ctx, weekFrom(base), testPool()); err != nil {
		t.Fatalf("GeneratePlan failed: %v", err)
	}

	plan, err := p.ClearDay(ctx, base)
	if err != nil {
		t.Fatalf("ClearDay failed: %v", err)
	}
	if plan.Days[0].Recommended != nil {
		t.Error("Expected cleared day to persist unassigned")
	}

	plan, err = p.ReshuffleDay(ctx, base, testPool())
	if err != nil {
		t.Fatalf("ReshuffleDay failed: %v", err)
	}
	if plan.Days[0].Recommended == nil {
		t.Fatal("Expected reshuffled day to have a recipe")
	}

	reloaded, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent failed: %v", err)
	}
	if reloaded.Days[0].Recommended == nil {
		t.Error("Expected the reshuffled assignment to be persisted")
	}
}

func TestRestorePlan(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewRepository(db.SQL)
	p := NewPlanner(NewEngine(firstPick), repo)

	firstWeek := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	if _, err := p.GeneratePlan(ctx, weekFrom(firstWeek), testPool()); err != nil {
		t.Fatalf("First GeneratePlan failed: %v", err)
	}
	if _, err := p.GeneratePlan(ctx, weekFrom(firstWeek.AddDate(0, 0, 7)), testPool()); err != nil {
		t.Fatalf("Second GeneratePlan failed: %v", err)
	}

	history, err := repo.ListHistory(ctx)
	if err != nil || len(history) != 1 {
		t.Fatalf("Expected 1 archived plan, got %d (err %v)", len(history), err)
	}

	restored, err := p.RestorePlan(ctx, history[0].ID)
	if err != nil {
		t.Fatalf("RestorePlan failed: %v", err)
	}
	if !schedule.SameDay(restored.Days[0].Date, firstWeek) {
		t.Errorf("Expected restored plan to start %v, got %v", firstWeek, restored.Days[0].Date)
	}

	if _, err := p.RestorePlan(ctx, "missing-id"); err == nil {
		t.Error("Expected an error restoring a missing plan")
	}
}
