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

func TestSpendingService_SummaryWeeklyBudget(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	budgets := NewBudgetService(st)
	txs := NewTransactionService(st)
	spending := NewSpendingService(st, st)

	now := time.Now()
	_, err := budgets.CreateBudget(ctx, "u2", core.Weekly, 100, nil)
	require.NoError(t, err)
	_, err = txs.CreateTransaction(ctx, "u2", 40, "Groceries", &now, "")
	require.NoError(t, err)
	_, err = txs.CreateTransaction(ctx, "u2", 70, "Groceries", &now, "")
	require.NoError(t, err)

	summary, err := spending.Summary(ctx, "u2", now)
	require.NoError(t, err)
	assert.Equal(t, core.Weekly, summary.ActivePeriod)
	assert.Equal(t, 110.0, summary.Spent)
	assert.Equal(t, 110.0, summary.ByPeriod.Weekly)
	require.Len(t, summary.Budgets, 1)
}

func TestSpendingService_SummaryNoBudgets(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	spending := NewSpendingService(st, st)

	summary, err := spending.Summary(ctx, "empty", time.Now())
	require.NoError(t, err)
	assert.Equal(t, core.Monthly, summary.ActivePeriod)
	assert.Zero(t, summary.Spent)
	assert.Empty(t, summary.Budgets)
}

func TestSpendingService_Overspent(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	budgets := NewBudgetService(st)
	txs := NewTransactionService(st)
	spending := NewSpendingService(st, st)

	now := time.Now()
	over, err := budgets.CreateBudget(ctx, "u1", core.Weekly, 50, nil)
	require.NoError(t, err)
	_, err = budgets.CreateBudget(ctx, "u1", core.Monthly, 1000, nil)
	require.NoError(t, err)
	_, err = txs.CreateTransaction(ctx, "u1", 80, "Groceries", &now, "")
	require.NoError(t, err)

	got, err := spending.Overspent(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, over.ID, got[0].Budget.ID)
	assert.Equal(t, 80.0, got[0].Spent)
}

func TestSpendingService_NotOverspentAtExactLimit(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	budgets := NewBudgetService(st)
	txs := NewTransactionService(st)
	spending := NewSpendingService(st, st)

	now := time.Now()
	_, err := budgets.CreateBudget(ctx, "u1", core.Weekly, 80, nil)
	require.NoError(t, err)
	_, err = txs.CreateTransaction(ctx, "u1", 80, "Groceries", &now, "")
	require.NoError(t, err)

	got, err := spending.Overspent(ctx, "u1", now)
	require.NoError(t, err)
	assert.Empty(t, got)
}
