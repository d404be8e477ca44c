package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials stamp last login", func(t *testing.T) {
		m := newMocks(t)
		uc := NewLoginUserUseCase(m.users, m.password, m.tokens)
		user := testUser()

		m.users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		m.password.EXPECT().VerifyPassword("hash", "password123").Return(nil)
		m.users.EXPECT().UpdateLastLogin(ctx, user.ID, gomock.Any()).Return(nil)
		m.tokens.EXPECT().GenerateTokenPair(ctx, user.ID, user.Email).Return(testPair, nil)

		out, err := uc.Execute(ctx, LoginUserInput{Email: "jane@example.com", Password: "password123"})

		require.NoError(t, err)
		require.NotNil(t, out.User.LastLogin)
		assert.WithinDuration(t, time.Now(), *out.User.LastLogin, time.Minute)
		assert.Equal(t, "access", out.AccessToken)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		m := newMocks(t)
		uc := NewLoginUserUseCase(m.users, m.password, m.tokens)
		user := testUser()

		m.users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerror.ErrUserNotFound)
		m.users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		m.password.EXPECT().VerifyPassword("hash", "wrong").Return(domainerror.ErrInvalidCredentials)

		_, errUnknown := uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "x"})
		_, errWrong := uc.Execute(ctx, LoginUserInput{Email: "jane@example.com", Password: "wrong"})

		assert.ErrorIs(t, errUnknown, domainerror.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, domainerror.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		m := newMocks(t)
		uc := NewLoginUserUseCase(m.users, m.password, m.tokens)
		user := testUser()
		user.IsActive = false

		m.users.EXPECT().FindByEmail(ctx, gomock.Any()).Return(user, nil)

		_, err := uc.Execute(ctx, LoginUserInput{Email: "jane@example.com", Password: "password123"})

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeAccountDeactivated, authErr.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		m := newMocks(t)
		uc := NewLoginUserUseCase(m.users, m.password, m.tokens)

		_, err := uc.Execute(ctx, LoginUserInput{})

		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)
	})
}
