package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Repository persists the current weekly plan and the archive of past plans.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new plan Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// SaveCurrent stores the current weekly plan, replacing any previous one.
func (r *Repository) SaveCurrent(ctx context.Context, plan WeeklyPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO current_plan (id, plan_data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET plan_data = excluded.plan_data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save weekly plan: %w", err)
	}
	return nil
}

// LoadCurrent returns the current weekly plan, or an empty plan if none has
// been saved yet.
func (r *Repository) LoadCurrent(ctx context.Context) (WeeklyPlan, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT plan_data FROM current_plan WHERE id = 1`).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return WeeklyPlan{}, nil
		}
		return WeeklyPlan{}, fmt.Errorf("failed to load weekly plan: %w", err)
	}

	var plan WeeklyPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return WeeklyPlan{}, fmt.Errorf("failed to unmarshal weekly plan: %w", err)
	}
	return plan, nil
}

// Archive stores a historical plan snapshot.
func (r *Repository) Archive(ctx context.Context, h HistoricalMealPlan) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to marshal historical plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO historical_plans (id, start_date, end_date, plan_data, archived_at)
		 VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.StartDate, h.EndDate, string(data), h.ArchivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive plan: %w", err)
	}
	return nil
}

// ListHistory returns all archived plans, newest first by start date.
func (r *Repository) ListHistory(ctx context.Context) ([]HistoricalMealPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, plan_data FROM historical_plans ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list historical plans: %w", err)
	}
	defer rows.Close()

	var plans []HistoricalMealPlan
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan historical plan row: %w", err)
		}

		var h HistoricalMealPlan
		if err := json.Unmarshal([]byte(data), &h); err != nil {
			log.Printf("Warning: failed to unmarshal historical plan %s: %v", id, err)
			continue
		}
		plans = append(plans, h)
	}
	return plans, rows.Err()
}

// GetHistorical fetches one archived plan by ID. A missing plan returns
// (nil, nil).
func (r *Repository) GetHistorical(ctx context.Context, id string) (*HistoricalMealPlan, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT plan_data FROM historical_plans WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get historical plan: %w", err)
	}

	var h HistoricalMealPlan
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		return nil, fmt.Errorf("failed to unmarshal historical plan: %w", err)
	}
	return &h, nil
}
