package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles persistence of transactions. The core decode and
// reporting logic never depends on the storage engine's internals.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new transaction Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save stores a batch of imported transactions tagged with their source file.
func (r *Repository) Save(ctx context.Context, txs []Transaction, importSource string) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx,
		`INSERT INTO transactions
		 (id, date, payee, amount, category, description, account, category_group, import_source, import_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, tx := range txs {
		if _, err := stmt.ExecContext(ctx,
			tx.ID, tx.Date, tx.Payee, tx.Amount, tx.Category,
			tx.Description, tx.Account, tx.CategoryGroup, importSource, now,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", tx.ID, err)
		}
	}

	return dbTx.Commit()
}

// Fetch returns transactions newest first, optionally only those on or
// after since.
func (r *Repository) Fetch(ctx context.Context, since *time.Time) ([]Transaction, error) {
	query := `SELECT id, date, payee, amount, category, description, account, category_group
	          FROM transactions`
	args := []any{}
	if since != nil {
		query += ` WHERE date >= ?`
		args = append(args, *since)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(
			&tx.ID, &tx.Date, &tx.Payee, &tx.Amount, &tx.Category,
			&tx.Description, &tx.Account, &tx.CategoryGroup,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// DeleteByID removes one transaction.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

// DeleteAll removes every stored transaction.
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}
