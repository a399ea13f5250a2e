// Package memory is the in-process fallback store: process-wide collections
// keyed by owner id, gone on process exit. It is selected once at startup
// when no durable backend is configured and stays selected for the process
// lifetime.
package memory

import (
	"context"
	"sync"
	"time"

	"walletalert/internal/core"
	"walletalert/internal/store"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]core.User
	categories   map[string][]core.Category
	budgets      map[string][]core.Budget
	transactions map[string][]core.Transaction
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:        make(map[string]core.User),
		categories:   make(map[string][]core.Category),
		budgets:      make(map[string][]core.Budget),
		transactions: make(map[string][]core.Transaction),
	}
}

func (s *Store) Close() error { return nil }

// --- users ---

func (s *Store) GetUser(_ context.Context, ownerID string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[ownerID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) InsertUser(_ context.Context, u core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.OwnerID]; ok {
		return core.NewConflictError("user already exists")
	}
	s.users[u.OwnerID] = u
	return nil
}

func (s *Store) UpdateUserEmail(_ context.Context, ownerID, email string, at time.Time) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[ownerID]
	if !ok {
		return nil, core.NewNotFoundError("user not found")
	}
	if email != "" {
		u.Email = email
	}
	u.UpdatedAt = at
	s.users[ownerID] = u
	return &u, nil
}

// --- categories ---

func (s *Store) ListCategories(_ context.Context, ownerID string) ([]core.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Category, len(s.categories[ownerID]))
	for i, c := range s.categories[ownerID] {
		out[i] = cloneCategory(c)
	}
	return out, nil
}

func (s *Store) InsertCategory(_ context.Context, c core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := core.CategoryKey(c.Name)
	for _, existing := range s.categories[c.OwnerID] {
		if core.CategoryKey(existing.Name) == key {
			return core.NewConflictError("Category already exists")
		}
	}
	s.categories[c.OwnerID] = append(s.categories[c.OwnerID], cloneCategory(c))
	return nil
}

func (s *Store) UpdateCategoryEmoji(_ context.Context, ownerID, id string, emoji *string, at time.Time) (*core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := s.categories[ownerID]
	for i := range cats {
		if cats[i].ID == id {
			cats[i].Emoji = emoji
			cats[i].UpdatedAt = at
			c := cloneCategory(cats[i])
			return &c, nil
		}
	}
	return nil, core.NewNotFoundError("category not found")
}

func (s *Store) DeleteCategory(_ context.Context, ownerID, id string) (*core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := s.categories[ownerID]
	for i := range cats {
		if cats[i].ID == id {
			removed := cloneCategory(cats[i])
			s.categories[ownerID] = append(cats[:i:i], cats[i+1:]...)
			return &removed, nil
		}
	}
	return nil, core.NewNotFoundError("category not found")
}

// --- budgets ---

func (s *Store) ListBudgets(_ context.Context, ownerID string) ([]core.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Budget, len(s.budgets[ownerID]))
	for i, b := range s.budgets[ownerID] {
		out[i] = cloneBudget(b)
	}
	return out, nil
}

func (s *Store) InsertBudget(_ context.Context, b core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets[b.OwnerID] = append(s.budgets[b.OwnerID], cloneBudget(b))
	return nil
}

func (s *Store) UpdateBudget(_ context.Context, ownerID, id string, changes core.BudgetUpdate) (*core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := s.budgets[ownerID]
	for i := range budgets {
		if budgets[i].ID == id {
			if changes.Period != nil {
				budgets[i].Period = *changes.Period
			}
			if changes.Amount != nil {
				budgets[i].Amount = *changes.Amount
			}
			if changes.Categories != nil {
				budgets[i].Categories = append([]string(nil), (*changes.Categories)...)
			}
			b := cloneBudget(budgets[i])
			return &b, nil
		}
	}
	return nil, core.NewNotFoundError("budget not found")
}

func (s *Store) DeleteBudget(_ context.Context, ownerID, id string) (*core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := s.budgets[ownerID]
	for i := range budgets {
		if budgets[i].ID == id {
			removed := cloneBudget(budgets[i])
			s.budgets[ownerID] = append(budgets[:i:i], budgets[i+1:]...)
			return &removed, nil
		}
	}
	return nil, core.NewNotFoundError("budget not found")
}

// --- transactions ---

func (s *Store) ListTransactions(_ context.Context, ownerID string) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Transaction, len(s.transactions[ownerID]))
	for i, t := range s.transactions[ownerID] {
		out[i] = cloneTransaction(t)
	}
	return out, nil
}

func (s *Store) InsertTransaction(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions[t.OwnerID] = append(s.transactions[t.OwnerID], cloneTransaction(t))
	return nil
}

func (s *Store) UpdateTransaction(_ context.Context, ownerID, id string, changes core.TransactionUpdate) (*core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.transactions[ownerID]
	for i := range txs {
		if txs[i].ID == id {
			if changes.Amount != nil {
				txs[i].Amount = *changes.Amount
			}
			if changes.Category != nil {
				txs[i].Category = *changes.Category
			}
			if changes.Date != nil {
				d := *changes.Date
				txs[i].Date = &d
			}
			if changes.Description != nil {
				txs[i].Description = *changes.Description
			}
			t := cloneTransaction(txs[i])
			return &t, nil
		}
	}
	return nil, core.NewNotFoundError("transaction not found")
}

func (s *Store) DeleteTransaction(_ context.Context, ownerID, id string) (*core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.transactions[ownerID]
	for i := range txs {
		if txs[i].ID == id {
			removed := cloneTransaction(txs[i])
			s.transactions[ownerID] = append(txs[:i:i], txs[i+1:]...)
			return &removed, nil
		}
	}
	return nil, core.NewNotFoundError("transaction not found")
}

// The clone helpers keep store-internal state from aliasing caller memory:
// records cross the boundary by value, including pointer fields.

func cloneBudget(b core.Budget) core.Budget {
	b.Categories = append([]string(nil), b.Categories...)
	if len(b.Categories) == 0 {
		b.Categories = nil
	}
	return b
}

func cloneCategory(c core.Category) core.Category {
	if c.Emoji != nil {
		e := *c.Emoji
		c.Emoji = &e
	}
	return c
}

func cloneTransaction(t core.Transaction) core.Transaction {
	if t.Date != nil {
		d := *t.Date
		t.Date = &d
	}
	return t
}
