package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only the given fields", func(t *testing.T) {
		m := newMocks(t)
		uc := NewUpdateProfileUseCase(m.users)
		user := testUser()
		first := "Janet"

		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.users.EXPECT().Update(ctx, user).Return(nil)

		out, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, FirstName: &first})

		require.NoError(t, err)
		assert.Equal(t, "Janet", out.User.FirstName)
		assert.Equal(t, "Doe", out.User.LastName)
		assert.Equal(t, "jane_doe", out.User.Username)
	})

	t.Run("username taken by someone else", func(t *testing.T) {
		m := newMocks(t)
		uc := NewUpdateProfileUseCase(m.users)
		user := testUser()
		username := "taken"

		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.users.EXPECT().ExistsByUsername(ctx, "taken", user.ID).Return(true, nil)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, Username: &username})

		assert.ErrorIs(t, err, domainerror.ErrUsernameAlreadyExists)
	})
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		m := newMocks(t)
		uc := NewChangePasswordUseCase(m.users, m.password)
		user := testUser()

		m.password.EXPECT().ValidatePasswordStrength("newpassword").Return(nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.password.EXPECT().VerifyPassword("hash", "wrong").Return(domainerror.ErrInvalidCredentials)

		_, err := uc.Execute(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "wrong", NewPassword: "newpassword"})

		assert.ErrorIs(t, err, domainerror.ErrIncorrectPassword)
	})

	t.Run("stores the new hash", func(t *testing.T) {
		m := newMocks(t)
		uc := NewChangePasswordUseCase(m.users, m.password)
		user := testUser()

		m.password.EXPECT().ValidatePasswordStrength("newpassword").Return(nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.password.EXPECT().VerifyPassword("hash", "current").Return(nil)
		m.password.EXPECT().HashPassword("newpassword").Return("new-hash", nil)
		m.users.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		_, err := uc.Execute(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "current", NewPassword: "newpassword"})

		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)
	})
}

func TestDeactivateAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	m := newMocks(t)
	uc := NewDeactivateAccountUseCase(m.users, m.password, m.tokens)
	user := testUser()

	m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.password.EXPECT().VerifyPassword("hash", "password123").Return(nil)
	m.tokens.EXPECT().InvalidateAllUserTokens(ctx, user.ID).Return(nil)
	m.users.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	_, err := uc.Execute(ctx, DeactivateAccountInput{UserID: user.ID, Password: "password123"})

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}
