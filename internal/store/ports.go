// Package store defines the persistence ports for the domain layer.
//
// Two implementations exist: the durable sqlite store and the in-process
// memory store. The backend package picks one at startup; from then on every
// operation in the process goes through that implementation. Both return the
// same canonical record shapes and the same typed errors from internal/core,
// so callers cannot tell them apart.
package store

import (
	"context"
	"time"

	"walletalert/internal/core"
)

// DefaultCategories is the seed set inserted on an owner's first category
// read, in this exact order, with no emoji.
var DefaultCategories = []string{
	"Groceries",
	"Transport",
	"Entertainment",
	"Utilities",
	"Other",
}

type (
	UserStore interface {
		// GetUser returns nil, nil when no record exists for the owner.
		GetUser(ctx context.Context, ownerID string) (*core.User, error)
		InsertUser(ctx context.Context, u core.User) error
		// UpdateUserEmail updates the email (when non-empty) and the
		// updatedAt stamp; core.NotFoundError when the owner has no record.
		UpdateUserEmail(ctx context.Context, ownerID, email string, at time.Time) (*core.User, error)
	}

	CategoryStore interface {
		ListCategories(ctx context.Context, ownerID string) ([]core.Category, error)
		// InsertCategory returns core.ConflictError when the owner already
		// has a category with the same name key.
		InsertCategory(ctx context.Context, c core.Category) error
		UpdateCategoryEmoji(ctx context.Context, ownerID, id string, emoji *string, at time.Time) (*core.Category, error)
		// DeleteCategory returns the removed record.
		DeleteCategory(ctx context.Context, ownerID, id string) (*core.Category, error)
	}

	BudgetStore interface {
		ListBudgets(ctx context.Context, ownerID string) ([]core.Budget, error)
		InsertBudget(ctx context.Context, b core.Budget) error
		UpdateBudget(ctx context.Context, ownerID, id string, changes core.BudgetUpdate) (*core.Budget, error)
		DeleteBudget(ctx context.Context, ownerID, id string) (*core.Budget, error)
	}

	TransactionStore interface {
		ListTransactions(ctx context.Context, ownerID string) ([]core.Transaction, error)
		InsertTransaction(ctx context.Context, t core.Transaction) error
		UpdateTransaction(ctx context.Context, ownerID, id string, changes core.TransactionUpdate) (*core.Transaction, error)
		DeleteTransaction(ctx context.Context, ownerID, id string) (*core.Transaction, error)
	}

	// Store aggregates the four entity ports behind one handle.
	Store interface {
		UserStore
		CategoryStore
		BudgetStore
		TransactionStore
		Close() error
	}
)
