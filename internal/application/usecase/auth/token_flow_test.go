package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pennywise/backend/internal/application/adapter"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRefreshTokenUseCase(m.users, m.tokens)
		user := testUser()

		m.tokens.EXPECT().ValidateRefreshToken(ctx, "old").Return(&adapter.TokenClaims{UserID: user.ID, Email: user.Email}, nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.tokens.EXPECT().InvalidateRefreshToken(ctx, "old").Return(nil)
		m.tokens.EXPECT().GenerateTokenPair(ctx, user.ID, user.Email).Return(testPair, nil)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "old"})

		require.NoError(t, err)
		assert.Equal(t, "refresh", out.RefreshToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRefreshTokenUseCase(m.users, m.tokens)
		m.tokens.EXPECT().ValidateRefreshToken(ctx, "old").Return(nil, domainerror.ErrInvalidToken)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "old"})

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("deactivated user", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRefreshTokenUseCase(m.users, m.tokens)
		user := testUser()
		user.IsActive = false

		m.tokens.EXPECT().ValidateRefreshToken(ctx, "old").Return(&adapter.TokenClaims{UserID: user.ID}, nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "old"})

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	m := newMocks(t)
	uc := NewLogoutUserUseCase(m.tokens)
	m.tokens.EXPECT().InvalidateRefreshToken(gomock.Any(), "gone").Return(errors.New("not found"))

	out, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "gone"})

	require.NoError(t, err)
	assert.Equal(t, "Successfully logged out", out.Message)
}

func TestForgotPasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("queues a reset email for a known user", func(t *testing.T) {
		m := newMocks(t)
		uc := NewForgotPasswordUseCase(m.users, m.resets, m.email)
		user := testUser()

		m.users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		m.resets.EXPECT().GenerateResetToken(ctx, user.ID, user.Email).
			Return(&adapter.PasswordResetToken{Token: "tok", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
		m.email.EXPECT().QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
			UserEmail:  user.Email,
			UserName:   "Jane Doe",
			ResetToken: "tok",
			ExpiresIn:  "1 hour",
		}).Return(nil)

		out, err := uc.Execute(ctx, ForgotPasswordInput{Email: "jane@example.com"})

		require.NoError(t, err)
		assert.Equal(t, forgotPasswordMessage, out.Message)
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		m := newMocks(t)
		uc := NewForgotPasswordUseCase(m.users, m.resets, m.email)
		m.users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerror.ErrUserNotFound)

		out, err := uc.Execute(ctx, ForgotPasswordInput{Email: "ghost@example.com"})

		require.NoError(t, err)
		assert.Equal(t, forgotPasswordMessage, out.Message)
	})

	t.Run("malformed email", func(t *testing.T) {
		m := newMocks(t)
		uc := NewForgotPasswordUseCase(m.users, m.resets, m.email)

		_, err := uc.Execute(ctx, ForgotPasswordInput{Email: "not-an-email"})

		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes the token and revokes sessions", func(t *testing.T) {
		m := newMocks(t)
		uc := NewResetPasswordUseCase(m.users, m.password, m.resets, m.tokens)
		user := testUser()

		m.password.EXPECT().ValidatePasswordStrength("newpassword").Return(nil)
		m.resets.EXPECT().ValidateResetToken(ctx, "tok").Return(&adapter.PasswordResetToken{Token: "tok", UserID: user.ID}, nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.password.EXPECT().HashPassword("newpassword").Return("new-hash", nil)
		m.resets.EXPECT().InvalidateResetToken(ctx, "tok").Return(nil)
		m.users.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		m.tokens.EXPECT().InvalidateAllUserTokens(ctx, user.ID).Return(nil)

		_, err := uc.Execute(ctx, ResetPasswordInput{Token: "tok", NewPassword: "newpassword"})

		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)
	})

	t.Run("a token can be redeemed once", func(t *testing.T) {
		m := newMocks(t)
		uc := NewResetPasswordUseCase(m.users, m.password, m.resets, m.tokens)
		user := testUser()

		m.password.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.resets.EXPECT().ValidateResetToken(ctx, "tok").Return(&adapter.PasswordResetToken{Token: "tok", UserID: user.ID}, nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		m.password.EXPECT().HashPassword(gomock.Any()).Return("new-hash", nil)
		m.resets.EXPECT().InvalidateResetToken(ctx, "tok").Return(domainerror.ErrInvalidResetToken)

		_, err := uc.Execute(ctx, ResetPasswordInput{Token: "tok", NewPassword: "newpassword"})

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeInvalidResetToken, authErr.Code)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("unknown token", func(t *testing.T) {
		m := newMocks(t)
		uc := NewResetPasswordUseCase(m.users, m.password, m.resets, m.tokens)
		m.password.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.resets.EXPECT().ValidateResetToken(ctx, "bad").Return(nil, domainerror.ErrInvalidResetToken)

		_, err := uc.Execute(ctx, ResetPasswordInput{Token: "bad", NewPassword: "newpassword"})

		assert.ErrorIs(t, err, domainerror.ErrInvalidResetToken)
	})
}

func TestAuthenticateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	inactive := testUser()
	inactive.IsActive = false

	tests := []struct {
		name     string
		token    string
		setup    func(m *mocks)
		wantCode domainerror.AuthErrorCode
		wantMsg  string
	}{
		{
			name:     "missing token",
			token:    "",
			setup:    func(m *mocks) {},
			wantCode: domainerror.ErrCodeMissingToken,
			wantMsg:  "Access denied. No token provided.",
		},
		{
			name:  "invalid token",
			token: "garbage",
			setup: func(m *mocks) {
				m.tokens.EXPECT().ValidateAccessToken(ctx, "garbage").Return(nil, domainerror.ErrInvalidToken)
			},
			wantCode: domainerror.ErrCodeInvalidToken,
			wantMsg:  "Invalid token.",
		},
		{
			name:  "expired token",
			token: "old",
			setup: func(m *mocks) {
				m.tokens.EXPECT().ValidateAccessToken(ctx, "old").Return(nil, domainerror.ErrExpiredToken)
			},
			wantCode: domainerror.ErrCodeExpiredToken,
			wantMsg:  "Token expired.",
		},
		{
			name:  "user no longer exists",
			token: "orphan",
			setup: func(m *mocks) {
				m.tokens.EXPECT().ValidateAccessToken(ctx, "orphan").Return(&adapter.TokenClaims{UserID: user.ID}, nil)
				m.users.EXPECT().FindByID(ctx, user.ID).Return(nil, domainerror.ErrUserNotFound)
			},
			wantCode: domainerror.ErrCodeUserNotFound,
			wantMsg:  "Invalid token. User not found.",
		},
		{
			name:  "deactivated user",
			token: "inactive",
			setup: func(m *mocks) {
				m.tokens.EXPECT().ValidateAccessToken(ctx, "inactive").Return(&adapter.TokenClaims{UserID: inactive.ID}, nil)
				m.users.EXPECT().FindByID(ctx, inactive.ID).Return(inactive, nil)
			},
			wantCode: domainerror.ErrCodeAccountDeactivated,
			wantMsg:  "Account is deactivated.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			tt.setup(m)
			uc := NewAuthenticateUserUseCase(m.users, m.tokens)

			_, err := uc.Execute(ctx, AuthenticateUserInput{Token: tt.token})

			var authErr *domainerror.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
			assert.Equal(t, tt.wantMsg, authErr.Message)
		})
	}

	t.Run("active user", func(t *testing.T) {
		m := newMocks(t)
		m.tokens.EXPECT().ValidateAccessToken(ctx, "good").Return(&adapter.TokenClaims{UserID: user.ID}, nil)
		m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		uc := NewAuthenticateUserUseCase(m.users, m.tokens)

		out, err := uc.Execute(ctx, AuthenticateUserInput{Token: "good"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, out.User.ID)
	})
}
