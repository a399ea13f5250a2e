// Package services holds the domain operations: seeding and uniqueness
// policy for categories, upsert semantics for users, record construction for
// budgets and transactions, and spending rollups. The services never log and
// never retry; typed failures go straight back to the caller.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"walletalert/internal/core"
	"walletalert/internal/store"
)

type UserService struct {
	store store.UserStore
}

func NewUserService(st store.UserStore) *UserService {
	return &UserService{store: st}
}

// UpsertUser creates the owner's record on first call and reports
// created=true; later calls update the email (when provided) and report
// created=false. Calling twice with the same arguments is idempotent.
func (s *UserService) UpsertUser(ctx context.Context, ownerID, email string) (*core.User, bool, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, false, core.NewValidationError("Owner id is required")
	}

	existing, err := s.store.GetUser(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		now := time.Now()
		u := core.User{
			ID:        uuid.NewString(),
			OwnerID:   ownerID,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := s.store.InsertUser(ctx, u)
		if err == nil {
			return &u, true, nil
		}
		// Lost a create race; fall through to the update path.
		if !core.IsConflict(err) {
			return nil, false, err
		}
	}

	u, err := s.store.UpdateUserEmail(ctx, ownerID, email, time.Now())
	if err != nil {
		return nil, false, err
	}
	return u, false, nil
}

// GetUser returns nil when the owner has no record.
func (s *UserService) GetUser(ctx context.Context, ownerID string) (*core.User, error) {
	return s.store.GetUser(ctx, ownerID)
}
