package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"walletalert/internal/core"
	"walletalert/internal/store"
)

// BudgetService is deliberately a thin persistence wrapper: amount sign and
// period enum are validated by the caller before anything reaches it. That
// trust boundary keeps the store mechanism-only.
type BudgetService struct {
	store store.BudgetStore
}

func NewBudgetService(st store.BudgetStore) *BudgetService {
	return &BudgetService{store: st}
}

func (s *BudgetService) ListBudgets(ctx context.Context, ownerID string) ([]core.Budget, error) {
	return s.store.ListBudgets(ctx, ownerID)
}

func (s *BudgetService) CreateBudget(ctx context.Context, ownerID string, period core.Period, amount float64, categories []string) (*core.Budget, error) {
	b := core.Budget{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Period:     period,
		Amount:     amount,
		Categories: categories,
		CreatedAt:  time.Now(),
	}
	if err := s.store.InsertBudget(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, ownerID, id string, changes core.BudgetUpdate) (*core.Budget, error) {
	return s.store.UpdateBudget(ctx, ownerID, id, changes)
}

func (s *BudgetService) DeleteBudget(ctx context.Context, ownerID, id string) (*core.Budget, error) {
	return s.store.DeleteBudget(ctx, ownerID, id)
}
