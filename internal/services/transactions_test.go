package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletalert/internal/core"
	"walletalert/internal/store/memory"
)

func TestTransactionService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewTransactionService(memory.New())

	date := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)
	tx, err := svc.CreateTransaction(ctx, "u1", 42.5, "Groceries", &date, "weekly shop")
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)

	list, err := svc.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 42.5, list[0].Amount)
	assert.Equal(t, "Groceries", list[0].Category)
	require.NotNil(t, list[0].Date)
	assert.True(t, list[0].Date.Equal(date))
	assert.Equal(t, "weekly shop", list[0].Description)

	newCat := "Transport"
	updated, err := svc.UpdateTransaction(ctx, "u1", tx.ID, core.TransactionUpdate{
		Category: &newCat,
	})
	require.NoError(t, err)
	assert.Equal(t, "Transport", updated.Category)
	assert.Equal(t, 42.5, updated.Amount)

	removed, err := svc.DeleteTransaction(ctx, "u1", tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, removed.ID)
	assert.Equal(t, "Transport", removed.Category)

	_, err = svc.DeleteTransaction(ctx, "u1", tx.ID)
	assert.True(t, core.IsNotFound(err))
}

func TestTransactionService_DateIsOptional(t *testing.T) {
	ctx := context.Background()
	svc := NewTransactionService(memory.New())

	tx, err := svc.CreateTransaction(ctx, "u1", 10, "Other", nil, "")
	require.NoError(t, err)
	assert.Nil(t, tx.Date)
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestTransactionService_StaleCategoryNameSurvives(t *testing.T) {
	// Deleting a category must not cascade to transactions that copied its
	// name; the reference is a denormalized string, not a foreign key.
	ctx := context.Background()
	st := memory.New()
	cats := NewCategoryService(st)
	txs := NewTransactionService(st)

	c, err := cats.CreateCategory(ctx, "u1", "Transit", nil)
	require.NoError(t, err)

	tx, err := txs.CreateTransaction(ctx, "u1", 5, "Transit", nil, "")
	require.NoError(t, err)

	_, err = cats.DeleteCategory(ctx, "u1", c.ID)
	require.NoError(t, err)

	list, err := txs.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tx.ID, list[0].ID)
	assert.Equal(t, "Transit", list[0].Category)
}
