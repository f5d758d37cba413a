// Package app wires the repositories, the recommendation engine, and the
// import paths into the operations the CLI exposes.
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"quick-meal-planner/internal/config"
	"quick-meal-planner/internal/csvcodec"
	"quick-meal-planner/internal/database"
	"quick-meal-planner/internal/grocery"
	"quick-meal-planner/internal/importlog"
	"quick-meal-planner/internal/planner"
	"quick-meal-planner/internal/recipe"
	"quick-meal-planner/internal/schedule"
	"quick-meal-planner/internal/storage"
	"quick-meal-planner/internal/transaction"
)

// App holds the application's dependencies.
type App struct {
	cfg *config.Config

	db          *database.DB
	recipeRepo  *recipe.Repository
	planRepo    *planner.Repository
	groceryRepo *grocery.Repository
	txRepo      *transaction.Repository
	importLog   *importlog.Store
	bookmarks   *storage.BookmarkStore

	mealPlanner *planner.Planner
	events      schedule.EventSource
}

// New creates and initializes a new App instance.
func New(cfg *config.Config, db *database.DB, events schedule.EventSource) (*App, error) {
	bookmarks, err := storage.NewBookmarkStore(cfg.BookmarkPath)
	if err != nil {
		return nil, err
	}

	planRepo := planner.NewRepository(db.SQL)

	return &App{
		cfg:         cfg,
		db:          db,
		recipeRepo:  recipe.NewRepository(db.SQL),
		planRepo:    planRepo,
		groceryRepo: grocery.NewRepository(db.SQL),
		txRepo:      transaction.NewRepository(db.SQL),
		importLog:   importlog.NewStore(db.SQL),
		bookmarks:   bookmarks,
		mealPlanner: planner.NewPlanner(planner.NewEngine(nil), planRepo),
		events:      events,
	}, nil
}

// ImportRecipes loads every recipe file from dir into the database,
// replacing the previous import. Individual parse failures are skipped and
// reported in aggregate.
func (a *App) ImportRecipes(ctx context.Context, dir string) (recipe.LoadSummary, error) {
	if dir == "" {
		dir = a.rememberedRecipeDir()
	}
	if dir == "" {
		return recipe.LoadSummary{}, fmt.Errorf("no recipe directory configured")
	}

	start := time.Now()
	recipes, summary, err := recipe.LoadDirectory(dir)
	if err != nil {
		return summary, err
	}

	if err := a.recipeRepo.DeleteAll(ctx); err != nil {
		return summary, err
	}
	if err := a.recipeRepo.SaveAll(ctx, recipes); err != nil {
		return summary, err
	}

	a.rememberRecipeDir(dir)
	a.recordImport(ctx, dir, importlog.KindRecipe, summary.Loaded, summary.Failed, start)

	log.Printf("Recipe import: found %d, loaded %d, failed %d", summary.Found, summary.Loaded, summary.Failed)
	return summary, nil
}

// GeneratePlan classifies the coming window and assigns recipes, archiving
// the previous plan and regenerating the grocery list.
func (a *App) GeneratePlan(ctx context.Context, now time.Time) (planner.WeeklyPlan, error) {
	events, err := a.events.Events(ctx, now, a.cfg.PlanDays)
	if err != nil {
		return planner.WeeklyPlan{}, fmt.Errorf("failed to fetch calendar events: %w", err)
	}

	pool, err := a.recipeRepo.List(ctx)
	if err != nil {
		return planner.WeeklyPlan{}, err
	}

	days := schedule.BuildWeek(events, now, a.cfg.PlanDays)
	plan, err := a.mealPlanner.GeneratePlan(ctx, days, pool)
	if err != nil {
		return planner.WeeklyPlan{}, err
	}

	if err := a.regenerateGroceries(ctx, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// CurrentPlan returns the stored weekly plan.
func (a *App) CurrentPlan(ctx context.Context) (planner.WeeklyPlan, error) {
	return a.planRepo.LoadCurrent(ctx)
}

// ReshuffleDay re-picks a single day's recipe and refreshes the grocery list.
func (a *App) ReshuffleDay(ctx context.Context, date time.Time) (planner.WeeklyPlan, error) {
	pool, err := a.recipeRepo.List(ctx)
	if err != nil {
		return planner.WeeklyPlan{}, err
	}

	plan, err := a.mealPlanner.ReshuffleDay(ctx, date, pool)
	if err != nil {
		return planner.WeeklyPlan{}, err
	}
	if err := a.regenerateGroceries(ctx, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// ClearDay unassigns a single day's recipe and refreshes the grocery list.
func (a *App) ClearDay(ctx context.Context, date time.Time) (planner.WeeklyPlan, error) {
	plan, err := a.mealPlanner.ClearDay(ctx, date)
	if err != nil {
		return planner.WeeklyPlan{}, err
	}
	if err := a.regenerateGroceries(ctx, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// History lists the archived plans, newest first.
func (a *App) History(ctx context.Context) ([]planner.HistoricalMealPlan, error) {
	return a.planRepo.ListHistory(ctx)
}

// RestorePlan loads an archived plan back as the current plan and refreshes
// the grocery list for it.
func (a *App) RestorePlan(ctx context.Context, id string) (planner.WeeklyPlan, error) {
	plan, err := a.mealPlanner.RestorePlan(ctx, id)
	if err != nil {
		return planner.WeeklyPlan{}, err
	}
	if err := a.regenerateGroceries(ctx, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// GroceryList returns the current grocery list.
func (a *App) GroceryList(ctx context.Context) (grocery.List, error) {
	return a.groceryRepo.Load(ctx)
}

// ToggleGroceryItem flips an item's checked state.
func (a *App) ToggleGroceryItem(ctx context.Context, itemID string) error {
	list, err := a.groceryRepo.Load(ctx)
	if err != nil {
		return err
	}
	if !list.Toggle(itemID) {
		return fmt.Errorf("grocery item %s not found", itemID)
	}
	return a.groceryRepo.Save(ctx, list)
}

// ClearCheckedGroceryItems removes checked items from the current list.
func (a *App) ClearCheckedGroceryItems(ctx context.Context) error {
	list, err := a.groceryRepo.Load(ctx)
	if err != nil {
		return err
	}
	list.ClearChecked()
	return a.groceryRepo.Save(ctx, list)
}

// ImportTransactions decodes one CSV export, stores its transactions, and
// moves the file to processed/. Bad rows are skipped and counted.
func (a *App) ImportTransactions(ctx context.Context, path string, raw []byte) (transaction.DecodeResult, error) {
	start := time.Now()

	result, err := transaction.DecodeCSV(raw, csvcodec.SkipRow)
	if err != nil {
		return result, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	if err := a.txRepo.Save(ctx, result.Transactions, filepath.Base(path)); err != nil {
		return result, err
	}

	a.recordImport(ctx, filepath.Base(path), importlog.KindTransaction, len(result.Transactions), result.Skipped, start)
	log.Printf("Transaction import %s: loaded %d, skipped %d", filepath.Base(path), len(result.Transactions), result.Skipped)
	return result, nil
}

// Transactions returns stored transactions within the given range, newest
// first.
func (a *App) Transactions(ctx context.Context, rng transaction.DateRange) ([]transaction.Transaction, error) {
	return a.txRepo.Fetch(ctx, rng.StartDate(time.Now()))
}

// ImportLog returns the most recent import runs.
func (a *App) ImportLog(ctx context.Context, n int) ([]importlog.Run, error) {
	return a.importLog.Recent(ctx, n)
}

// CleanupImportLog removes import runs older than the given number of days.
func (a *App) CleanupImportLog(ctx context.Context, olderThanDays int) (int64, error) {
	return a.importLog.Cleanup(ctx, olderThanDays)
}

// regenerateGroceries rebuilds the grocery list from the plan's assigned
// recipes. Prior checked state is discarded with the old list.
func (a *App) regenerateGroceries(ctx context.Context, plan planner.WeeklyPlan) error {
	var assigned []recipe.Recipe
	for _, day := range plan.Days {
		if day.Recommended != nil {
			assigned = append(assigned, *day.Recommended)
		}
	}
	return a.groceryRepo.Save(ctx, grocery.Generate(assigned))
}

func (a *App) recordImport(ctx context.Context, source string, kind importlog.Kind, loaded, skipped int, start time.Time) {
	err := a.importLog.Record(ctx, importlog.Run{
		Source:    source,
		Kind:      kind,
		Loaded:    loaded,
		Skipped:   skipped,
		LatencyMS: time.Since(start).Milliseconds(),
	})
	if err != nil {
		log.Printf("Warning: failed to record import run: %v", err)
	}
}

func (a *App) rememberedRecipeDir() string {
	b, err := a.bookmarks.Load()
	if err != nil {
		log.Printf("Warning: failed to load bookmarks: %v", err)
		return a.cfg.RecipeDir
	}
	if b.RecipeDir != "" {
		return b.RecipeDir
	}
	return a.cfg.RecipeDir
}

func (a *App) rememberRecipeDir(dir string) {
	b, err := a.bookmarks.Load()
	if err != nil {
		log.Printf("Warning: failed to load bookmarks: %v", err)
		return
	}
	b.RecipeDir = dir
	if err := a.bookmarks.Save(b); err != nil {
		log.Printf("Warning: failed to save bookmarks: %v", err)
	}
}
