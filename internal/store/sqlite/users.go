package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"walletalert/internal/core"
)

const userColumns = "id, owner_id, email, created_at, updated_at"

// scanUser is the only place that knows how a users row maps onto the
// canonical record.
func scanUser(row rowScanner) (*core.User, error) {
	var (
		u                    core.User
		createdAt, updatedAt string
	)
	if err := row.Scan(&u.ID, &u.OwnerID, &u.Email, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if u.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, ownerID string) (*core.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE owner_id = ?", ownerID)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Store) InsertUser(ctx context.Context, u core.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, owner_id, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.OwnerID, u.Email, encodeTime(u.CreatedAt), encodeTime(u.UpdatedAt))
	if isUniqueViolation(err) {
		return core.NewConflictError("user already exists")
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) UpdateUserEmail(ctx context.Context, ownerID, email string, at time.Time) (*core.User, error) {
	var (
		res sql.Result
		err error
	)
	if email != "" {
		res, err = s.db.ExecContext(ctx,
			"UPDATE users SET email = ?, updated_at = ? WHERE owner_id = ?",
			email, encodeTime(at), ownerID)
	} else {
		res, err = s.db.ExecContext(ctx,
			"UPDATE users SET updated_at = ? WHERE owner_id = ?",
			encodeTime(at), ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return nil, core.NewNotFoundError("user not found")
	}
	return s.GetUser(ctx, ownerID)
}
