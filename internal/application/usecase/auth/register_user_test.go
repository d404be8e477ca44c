package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func validRegistration() RegisterUserInput {
	return RegisterUserInput{
		Username:  "jane_doe",
		Email:     "Jane@Example.com",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user, issues tokens and queues a welcome email", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRegisterUserUseCase(m.users, m.password, m.tokens, m.email)

		m.password.EXPECT().ValidatePasswordStrength("password123").Return(nil)
		m.users.EXPECT().ExistsByEmail(ctx, "jane@example.com").Return(false, nil)
		m.users.EXPECT().ExistsByUsername(ctx, "jane_doe", uuid.Nil).Return(false, nil)
		m.password.EXPECT().HashPassword("password123").Return("hashed", nil)
		m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
			assert.Equal(t, "hashed", u.PasswordHash)
			assert.True(t, u.IsActive)
			assert.False(t, u.IsAdmin)
			return nil
		})
		m.tokens.EXPECT().GenerateTokenPair(ctx, gomock.Any(), "jane@example.com").Return(testPair, nil)
		m.email.EXPECT().QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
			UserEmail: "jane@example.com",
			UserName:  "Jane Doe",
			Username:  "jane_doe",
		}).Return(nil)

		out, err := uc.Execute(ctx, validRegistration())

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, "jane@example.com", out.User.Email)
	})

	t.Run("email queue failure does not fail registration", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRegisterUserUseCase(m.users, m.password, m.tokens, m.email)

		m.password.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.users.EXPECT().ExistsByEmail(ctx, gomock.Any()).Return(false, nil)
		m.users.EXPECT().ExistsByUsername(ctx, gomock.Any(), uuid.Nil).Return(false, nil)
		m.password.EXPECT().HashPassword(gomock.Any()).Return("hashed", nil)
		m.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.tokens.EXPECT().GenerateTokenPair(ctx, gomock.Any(), gomock.Any()).Return(testPair, nil)
		m.email.EXPECT().QueueWelcomeEmail(ctx, gomock.Any()).Return(errors.New("queue down"))

		_, err := uc.Execute(ctx, validRegistration())
		assert.NoError(t, err)
	})

	t.Run("collects every field error", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRegisterUserUseCase(m.users, m.password, m.tokens, m.email)
		m.password.EXPECT().ValidatePasswordStrength("short").Return(domainerror.ErrWeakPassword)

		_, err := uc.Execute(ctx, RegisterUserInput{Username: "ab", Email: "nope", Password: "short"})

		var verr *domainerror.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fe.Field)
		}
		assert.ElementsMatch(t, []string{"username", "email", "password"}, fields)
	})

	t.Run("duplicate email", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRegisterUserUseCase(m.users, m.password, m.tokens, m.email)
		m.password.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.users.EXPECT().ExistsByEmail(ctx, gomock.Any()).Return(true, nil)

		_, err := uc.Execute(ctx, validRegistration())

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeEmailExists, authErr.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		m := newMocks(t)
		uc := NewRegisterUserUseCase(m.users, m.password, m.tokens, m.email)
		m.password.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.users.EXPECT().ExistsByEmail(ctx, gomock.Any()).Return(false, nil)
		m.users.EXPECT().ExistsByUsername(ctx, "jane_doe", uuid.Nil).Return(true, nil)

		_, err := uc.Execute(ctx, validRegistration())

		assert.ErrorIs(t, err, domainerror.ErrUsernameAlreadyExists)
	})
}
