package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"walletalert/internal/core"
)

const transactionColumns = "id, owner_id, amount, category, tx_date, description, created_at"

func scanTransaction(row rowScanner) (*core.Transaction, error) {
	var (
		t         core.Transaction
		txDate    sql.NullString
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Amount, &t.Category, &txDate, &t.Description, &createdAt); err != nil {
		return nil, err
	}
	if txDate.Valid {
		d, err := decodeTime(txDate.String)
		if err != nil {
			return nil, err
		}
		t.Date = &d
	}

	var err error
	if t.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func encodeTxDate(date *time.Time) sql.NullString {
	if date == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: encodeTime(*date), Valid: true}
}

func (s *Store) ListTransactions(ctx context.Context, ownerID string) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE owner_id = ? ORDER BY rowid", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (s *Store) InsertTransaction(ctx context.Context, t core.Transaction) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO transactions (id, owner_id, amount, category, tx_date, description, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.OwnerID, t.Amount, t.Category, encodeTxDate(t.Date), t.Description, encodeTime(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, ownerID, id string, changes core.TransactionUpdate) (*core.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE owner_id = ? AND id = ?", ownerID, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	if changes.Amount != nil {
		t.Amount = *changes.Amount
	}
	if changes.Category != nil {
		t.Category = *changes.Category
	}
	if changes.Date != nil {
		d := *changes.Date
		t.Date = &d
	}
	if changes.Description != nil {
		t.Description = *changes.Description
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE transactions SET amount = ?, category = ?, tx_date = ?, description = ? WHERE owner_id = ? AND id = ?",
		t.Amount, t.Category, encodeTxDate(t.Date), t.Description, ownerID, id); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, ownerID, id string) (*core.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE owner_id = ? AND id = ?", ownerID, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM transactions WHERE owner_id = ? AND id = ?", ownerID, id); err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	return t, nil
}
