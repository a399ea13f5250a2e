package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletalert/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "walletalert.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_CategoryConflictViaUniqueIndex(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	require.NoError(t, s.InsertCategory(ctx, core.Category{
		ID: "c1", OwnerID: "u1", Name: "Transit", CreatedAt: now, UpdatedAt: now,
	}))

	// The unique index folds case and trims, so this collides.
	err := s.InsertCategory(ctx, core.Category{
		ID: "c2", OwnerID: "u1", Name: "  TRANSIT ", CreatedAt: now, UpdatedAt: now,
	})
	assert.True(t, core.IsConflict(err))

	assert.NoError(t, s.InsertCategory(ctx, core.Category{
		ID: "c3", OwnerID: "u2", Name: "Transit", CreatedAt: now, UpdatedAt: now,
	}))
}

func TestSQLite_CategoryConflictFoldsUnicode(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	require.NoError(t, s.InsertCategory(ctx, core.Category{
		ID: "c1", OwnerID: "u1", Name: "CAFÉ", CreatedAt: now, UpdatedAt: now,
	}))

	// The fold happens in Go, not in SQL, so non-ASCII names collide the
	// same way they do on the memory backend.
	err := s.InsertCategory(ctx, core.Category{
		ID: "c2", OwnerID: "u1", Name: "café", CreatedAt: now, UpdatedAt: now,
	})
	assert.True(t, core.IsConflict(err))
}

func TestSQLite_UpdateCategoryEmoji(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	require.NoError(t, s.InsertCategory(ctx, core.Category{
		ID: "c1", OwnerID: "u1", Name: "Transit", CreatedAt: now, UpdatedAt: now,
	}))

	emoji := "🚌"
	later := now.Add(time.Minute)
	c, err := s.UpdateCategoryEmoji(ctx, "u1", "c1", &emoji, later)
	require.NoError(t, err)
	require.NotNil(t, c.Emoji)
	assert.Equal(t, "🚌", *c.Emoji)
	assert.True(t, c.UpdatedAt.Equal(later))

	c, err = s.UpdateCategoryEmoji(ctx, "u1", "c1", nil, later)
	require.NoError(t, err)
	assert.Nil(t, c.Emoji)

	_, err = s.UpdateCategoryEmoji(ctx, "u1", "missing", &emoji, later)
	assert.True(t, core.IsNotFound(err))
}

func TestSQLite_CategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	emoji := "🚌"
	require.NoError(t, s.InsertCategory(ctx, core.Category{
		ID: "c1", OwnerID: "u1", Name: "Transit", Emoji: &emoji, CreatedAt: now, UpdatedAt: now,
	}))

	cats, err := s.ListCategories(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Transit", cats[0].Name)
	require.NotNil(t, cats[0].Emoji)
	assert.Equal(t, "🚌", *cats[0].Emoji)
	assert.True(t, cats[0].CreatedAt.Equal(now))

	// Clear the emoji with an explicit nil.
	updated, err := s.UpdateCategoryEmoji(ctx, "u1", "c1", nil, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, updated.Emoji)

	removed, err := s.DeleteCategory(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", removed.ID)

	_, err = s.DeleteCategory(ctx, "u1", "c1")
	assert.True(t, core.IsNotFound(err))
}

func TestSQLite_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	names := []string{"Groceries", "Transport", "Entertainment", "Utilities", "Other"}
	for i, name := range names {
		require.NoError(t, s.InsertCategory(ctx, core.Category{
			ID: string(rune('a' + i)), OwnerID: "u1", Name: name, CreatedAt: now, UpdatedAt: now,
		}))
	}

	cats, err := s.ListCategories(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cats, len(names))
	for i, c := range cats {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestSQLite_BudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	require.NoError(t, s.InsertBudget(ctx, core.Budget{
		ID: "b1", OwnerID: "u1", Period: core.Weekly, Amount: 100,
		Categories: []string{"Groceries", "Transport"}, CreatedAt: now,
	}))

	list, err := s.ListBudgets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, core.Weekly, list[0].Period)
	assert.Equal(t, 100.0, list[0].Amount)
	assert.Equal(t, []string{"Groceries", "Transport"}, list[0].Categories)

	amount := 300.0
	updated, err := s.UpdateBudget(ctx, "u1", "b1", core.BudgetUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Amount)
	assert.Equal(t, core.Weekly, updated.Period)
	assert.Equal(t, []string{"Groceries", "Transport"}, updated.Categories)

	_, err = s.UpdateBudget(ctx, "u2", "b1", core.BudgetUpdate{Amount: &amount})
	assert.True(t, core.IsNotFound(err))

	removed, err := s.DeleteBudget(ctx, "u1", "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", removed.ID)
}

func TestSQLite_TransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()
	date := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertTransaction(ctx, core.Transaction{
		ID: "t1", OwnerID: "u1", Amount: 42.5, Category: "Groceries",
		Date: &date, Description: "weekly shop", CreatedAt: now,
	}))
	require.NoError(t, s.InsertTransaction(ctx, core.Transaction{
		ID: "t2", OwnerID: "u1", Amount: 7, Category: "Other", CreatedAt: now,
	}))

	list, err := s.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].Date)
	assert.True(t, list[0].Date.Equal(date))
	assert.Nil(t, list[1].Date)

	desc := "corrected"
	updated, err := s.UpdateTransaction(ctx, "u1", "t1", core.TransactionUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "corrected", updated.Description)
	assert.Equal(t, 42.5, updated.Amount)

	removed, err := s.DeleteTransaction(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", removed.ID)

	_, err = s.UpdateTransaction(ctx, "u1", "t1", core.TransactionUpdate{Description: &desc})
	assert.True(t, core.IsNotFound(err))
}

func TestSQLite_UserUpsertPrimitives(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	u, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.InsertUser(ctx, core.User{
		ID: "id1", OwnerID: "u1", Email: "a@b.c", CreatedAt: now, UpdatedAt: now,
	}))

	// Second insert for the same owner hits the unique index.
	err = s.InsertUser(ctx, core.User{
		ID: "id2", OwnerID: "u1", CreatedAt: now, UpdatedAt: now,
	})
	assert.True(t, core.IsConflict(err))

	later := now.Add(time.Minute)
	updated, err := s.UpdateUserEmail(ctx, "u1", "new@b.c", later)
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", updated.Email)
	assert.Equal(t, "id1", updated.ID)

	// Empty email only bumps updatedAt.
	updated, err = s.UpdateUserEmail(ctx, "u1", "", later.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", updated.Email)

	_, err = s.UpdateUserEmail(ctx, "missing", "x@y.z", later)
	assert.True(t, core.IsNotFound(err))
}
