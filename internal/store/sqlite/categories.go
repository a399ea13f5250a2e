package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"walletalert/internal/core"
)

const categoryColumns = "id, owner_id, name, emoji, created_at, updated_at"

func scanCategory(row rowScanner) (*core.Category, error) {
	var (
		c                    core.Category
		emoji                sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &emoji, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if emoji.Valid {
		c.Emoji = &emoji.String
	}

	var err error
	if c.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, ownerID string) ([]core.Category, error) {
	// rowid preserves insertion order, which the seed set relies on.
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE owner_id = ? ORDER BY rowid", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (s *Store) InsertCategory(ctx context.Context, c core.Category) error {
	var emoji sql.NullString
	if c.Emoji != nil {
		emoji = sql.NullString{String: *c.Emoji, Valid: true}
	}

	// The uniqueness fold happens here, in Go, so sqlite and the memory
	// store agree on what counts as a duplicate name.
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (id, owner_id, name, name_key, emoji, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.OwnerID, c.Name, core.CategoryKey(c.Name), emoji, encodeTime(c.CreatedAt), encodeTime(c.UpdatedAt))
	if isUniqueViolation(err) {
		return core.NewConflictError("Category already exists")
	}
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *Store) UpdateCategoryEmoji(ctx context.Context, ownerID, id string, emoji *string, at time.Time) (*core.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE owner_id = ? AND id = ?", ownerID, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	c.Emoji = emoji
	c.UpdatedAt = at

	var value sql.NullString
	if emoji != nil {
		value = sql.NullString{String: *emoji, Valid: true}
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE categories SET emoji = ?, updated_at = ? WHERE owner_id = ? AND id = ?",
		value, encodeTime(at), ownerID, id); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, ownerID, id string) (*core.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE owner_id = ? AND id = ?", ownerID, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM categories WHERE owner_id = ? AND id = ?", ownerID, id); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return c, nil
}
