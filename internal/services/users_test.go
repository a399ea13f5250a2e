package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletalert/internal/core"
	"walletalert/internal/store/memory"
)

func TestUserService_UpsertCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New())

	u, created, err := svc.UpsertUser(ctx, "owner-1", "a@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "owner-1", u.OwnerID)
	assert.Equal(t, "a@example.com", u.Email)
	assert.NotEmpty(t, u.ID)

	// Same arguments again: idempotent, created=false.
	again, created, err := svc.UpsertUser(ctx, "owner-1", "a@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, "a@example.com", again.Email)
}

func TestUserService_UpsertUpdatesEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New())

	_, _, err := svc.UpsertUser(ctx, "owner-1", "old@example.com")
	require.NoError(t, err)

	u, created, err := svc.UpsertUser(ctx, "owner-1", "new@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "new@example.com", u.Email)

	// Empty email leaves the stored one alone.
	u, _, err = svc.UpsertUser(ctx, "owner-1", "")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
}

func TestUserService_UpsertRejectsEmptyOwner(t *testing.T) {
	svc := NewUserService(memory.New())

	_, _, err := svc.UpsertUser(context.Background(), "   ", "a@example.com")
	assert.True(t, core.IsValidation(err))
}

func TestUserService_GetUserAbsent(t *testing.T) {
	svc := NewUserService(memory.New())

	u, err := svc.GetUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)
}
