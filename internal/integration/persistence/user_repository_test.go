package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	alice := createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	found, err := repo.FindByEmail(ctx, "  ALICE@example.com ")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	exists, err := repo.ExistsByUsername(ctx, "bob", alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "alice", alice.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a user does not collide with their own username")

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	loginAt := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, alice.ID, loginAt))

	alice.IsActive = false
	alice.FirstName = "Alicia"
	require.NoError(t, repo.Update(ctx, alice))

	reloaded, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
	assert.Equal(t, "Alicia", reloaded.FirstName)
	require.NotNil(t, reloaded.LastLogin)
	assert.True(t, reloaded.LastLogin.Equal(loginAt))
}
