package services

import (
	"context"
	"time"

	"walletalert/internal/core"
	"walletalert/internal/store"
)

// SpendingService loads an owner's budgets and transactions once and hands
// them to the pure period math in internal/core. It performs no writes.
type SpendingService struct {
	budgets      store.BudgetStore
	transactions store.TransactionStore
}

func NewSpendingService(budgets store.BudgetStore, transactions store.TransactionStore) *SpendingService {
	return &SpendingService{budgets: budgets, transactions: transactions}
}

// Summary is the dashboard rollup for one owner.
type Summary struct {
	ActivePeriod core.Period       `json:"activePeriod"`
	Spent        float64           `json:"spent"`
	ByPeriod     core.PeriodTotals `json:"byPeriod"`
	Budgets      []core.Budget     `json:"budgets"`
}

// Overspend reports a budget whose own-period spending exceeds its amount.
type Overspend struct {
	Budget core.Budget `json:"budget"`
	Spent  float64     `json:"spent"`
}

func (s *SpendingService) Summary(ctx context.Context, ownerID string, now time.Time) (*Summary, error) {
	budgets, txs, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		ActivePeriod: core.ActivePeriod(budgets),
		Spent:        core.CurrentPeriodSpending(txs, budgets, now),
		ByPeriod:     core.SpendingByPeriod(txs, budgets, now),
		Budgets:      budgets,
	}, nil
}

// Overspent returns every budget the owner has blown through in its own
// period window.
func (s *SpendingService) Overspent(ctx context.Context, ownerID string, now time.Time) ([]Overspend, error) {
	budgets, txs, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var out []Overspend
	for _, b := range budgets {
		spent := core.CurrentPeriodSpending(txs, []core.Budget{b}, now)
		if spent > b.Amount {
			out = append(out, Overspend{Budget: b, Spent: spent})
		}
	}
	return out, nil
}

func (s *SpendingService) load(ctx context.Context, ownerID string) ([]core.Budget, []core.Transaction, error) {
	budgets, err := s.budgets.ListBudgets(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	txs, err := s.transactions.ListTransactions(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	return budgets, txs, nil
}
