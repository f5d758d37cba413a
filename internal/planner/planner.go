package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"quick-meal-planner/internal/recipe"
	"quick-meal-planner/internal/schedule"
)

// Planner generates and persists weekly plans, archiving the previous plan
// before each overwrite.
type Planner struct {
	engine *Engine
	repo   *Repository
}

// NewPlanner creates a new Planner instance.
func NewPlanner(engine *Engine, repo *Repository) *Planner {
	return &Planner{engine: engine, repo: repo}
}

// GeneratePlan builds a new weekly plan for the given day schedules. A
// non-empty previous plan is archived first.
func (p *Planner) GeneratePlan(ctx context.Context, days []schedule.DaySchedule, pool []recipe.Recipe) (WeeklyPlan, error) {
	previous, err := p.repo.LoadCurrent(ctx)
	if err != nil {
		return WeeklyPlan{}, fmt.Errorf("failed to load previous plan: %w", err)
	}

	if !previous.IsEmpty() {
		if err := p.repo.Archive(ctx, NewHistoricalPlan(previous)); err != nil {
			return WeeklyPlan{}, fmt.Errorf("failed to archive previous plan: %w", err)
		}
		log.Printf("Archived previous plan (%d days)", len(previous.Days))
	}

	plan := WeeklyPlan{Days: p.engine.Generate(days, pool)}
	if err := p.repo.SaveCurrent(ctx, plan); err != nil {
		return WeeklyPlan{}, err
	}
	return plan, nil
}

// ReshuffleDay re-picks the recipe for a single day of the current plan.
func (p *Planner) ReshuffleDay(ctx context.Context, date time.Time, pool []recipe.Recipe) (WeeklyPlan, error) {
	plan, err := p.repo.LoadCurrent(ctx)
	if err != nil {
		return WeeklyPlan{}, err
	}

	p.engine.ReshuffleDay(&plan, date, pool)
	if err := p.repo.SaveCurrent(ctx, plan); err != nil {
		return WeeklyPlan{}, err
	}
	return plan, nil
}

// ClearDay unassigns the recipe for a single day of the current plan.
func (p *Planner) ClearDay(ctx context.Context, date time.Time) (WeeklyPlan, error) {
	plan, err := p.repo.LoadCurrent(ctx)
	if err != nil {
		return WeeklyPlan{}, err
	}

	p.engine.ClearDay(&plan, date)
	if err := p.repo.SaveCurrent(ctx, plan); err != nil {
		return WeeklyPlan{}, err
	}
	return plan, nil
}

// RestorePlan loads an archived plan back as the current plan.
func (p *Planner) RestorePlan(ctx context.Context, id string) (WeeklyPlan, error) {
	h, err := p.repo.GetHistorical(ctx, id)
	if err != nil {
		return WeeklyPlan{}, err
	}
	if h == nil {
		return WeeklyPlan{}, fmt.Errorf("historical plan %s not found", id)
	}

	plan := WeeklyPlan{Days: h.Days}
	if err := p.repo.SaveCurrent(ctx, plan); err != nil {
		return WeeklyPlan{}, err
	}
	return plan, nil
}
