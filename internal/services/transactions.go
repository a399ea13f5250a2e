package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"walletalert/internal/core"
	"walletalert/internal/store"
)

// TransactionService stores what it is given. Amount sign and category
// existence are the caller's job (the existence check runs against the
// category service before create, and again on update when the category
// changes); nothing here enforces either.
type TransactionService struct {
	store store.TransactionStore
}

func NewTransactionService(st store.TransactionStore) *TransactionService {
	return &TransactionService{store: st}
}

func (s *TransactionService) ListTransactions(ctx context.Context, ownerID string) ([]core.Transaction, error) {
	return s.store.ListTransactions(ctx, ownerID)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID string, amount float64, category string, date *time.Time, description string) (*core.Transaction, error) {
	t := core.Transaction{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.store.InsertTransaction(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id string, changes core.TransactionUpdate) (*core.Transaction, error) {
	return s.store.UpdateTransaction(ctx, ownerID, id, changes)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, id string) (*core.Transaction, error) {
	return s.store.DeleteTransaction(ctx, ownerID, id)
}
