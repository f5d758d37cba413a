package grocery

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository persists the current grocery list. There is only ever one
// list; regeneration replaces it wholesale.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new grocery Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save stores the list, replacing any previous one.
func (r *Repository) Save(ctx context.Context, list List) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal grocery list: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO grocery_list (id, list_data, generated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET list_data = excluded.list_data, generated_at = excluded.generated_at`,
		string(data), list.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save grocery list: %w", err)
	}
	return nil
}

// Load returns the current list, or an empty one if none has been saved.
func (r *Repository) Load(ctx context.Context) (List, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT list_data FROM grocery_list WHERE id = 1`).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return List{}, nil
		}
		return List{}, fmt.Errorf("failed to load grocery list: %w", err)
	}

	var list List
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return List{}, fmt.Errorf("failed to unmarshal grocery list: %w", err)
	}
	return list, nil
}
