// Package importlog records the aggregate outcome of import runs: how many
// recipes or transaction rows loaded and how many were skipped.
package importlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Kind identifies what an import run brought in.
type Kind string

const (
	KindRecipe      Kind = "recipe"
	KindTransaction Kind = "transaction"
)

// Run records metadata for a single import execution.
type Run struct {
	ID        int64
	Source    string
	Kind      Kind
	Loaded    int
	Skipped   int
	LatencyMS int64
	Timestamp time.Time
}

// Store handles persistence of import runs to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a run to the database.
func (s *Store) Record(ctx context.Context, run Run) error {
	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO import_runs (source, kind, loaded, skipped, latency_ms, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Source, string(run.Kind), run.Loaded, run.Skipped, run.LatencyMS, ts,
	)
	if err != nil {
		return fmt.Errorf("failed to record import run: %w", err)
	}
	return nil
}

// Recent returns the last n runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, kind, loaded, skipped, latency_ms, timestamp
		 FROM import_runs ORDER BY timestamp DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list import runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var kind string
		if err := rows.Scan(&run.ID, &run.Source, &kind, &run.Loaded, &run.Skipped, &run.LatencyMS, &run.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		run.Kind = Kind(kind)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Cleanup removes runs older than the specified number of days and returns
// how many were deleted.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	res, err := s.db.ExecContext(ctx, `DELETE FROM import_runs WHERE timestamp < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up import runs: %w", err)
	}
	return res.RowsAffected()
}
