package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"walletalert/internal/core"
)

const budgetColumns = "id, owner_id, period, amount, categories, created_at"

func scanBudget(row rowScanner) (*core.Budget, error) {
	var (
		b          core.Budget
		categories sql.NullString
		createdAt  string
	)
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Period, &b.Amount, &categories, &createdAt); err != nil {
		return nil, err
	}
	if categories.Valid {
		if err := json.Unmarshal([]byte(categories.String), &b.Categories); err != nil {
			return nil, fmt.Errorf("decode budget categories: %w", err)
		}
	}

	var err error
	if b.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func encodeBudgetCategories(categories []string) (sql.NullString, error) {
	if len(categories) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode budget categories: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func (s *Store) ListBudgets(ctx context.Context, ownerID string) ([]core.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner_id = ? ORDER BY rowid", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("list budgets: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return out, nil
}

func (s *Store) InsertBudget(ctx context.Context, b core.Budget) error {
	categories, err := encodeBudgetCategories(b.Categories)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO budgets (id, owner_id, period, amount, categories, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		b.ID, b.OwnerID, string(b.Period), b.Amount, categories, encodeTime(b.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

func (s *Store) UpdateBudget(ctx context.Context, ownerID, id string, changes core.BudgetUpdate) (*core.Budget, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner_id = ? AND id = ?", ownerID, id)
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("budget not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}

	if changes.Period != nil {
		b.Period = *changes.Period
	}
	if changes.Amount != nil {
		b.Amount = *changes.Amount
	}
	if changes.Categories != nil {
		b.Categories = *changes.Categories
	}

	categories, err := encodeBudgetCategories(b.Categories)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE budgets SET period = ?, amount = ?, categories = ? WHERE owner_id = ? AND id = ?",
		string(b.Period), b.Amount, categories, ownerID, id); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	return b, nil
}

func (s *Store) DeleteBudget(ctx context.Context, ownerID, id string) (*core.Budget, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("delete budget: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner_id = ? AND id = ?", ownerID, id)
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("budget not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete budget: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM budgets WHERE owner_id = ? AND id = ?", ownerID, id); err != nil {
		return nil, fmt.Errorf("delete budget: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete budget: %w", err)
	}
	return b, nil
}
