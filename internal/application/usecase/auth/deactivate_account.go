package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// DeactivateAccountInput represents the input for closing an account.
type DeactivateAccountInput struct {
	UserID   uuid.UUID
	Password string
}

// DeactivateAccountOutput represents the output of closing an account.
type DeactivateAccountOutput struct {
	Message string
}

// DeactivateAccountUseCase closes an account. Users are deactivated, never
// removed, so their records stay consistent.
type DeactivateAccountUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewDeactivateAccountUseCase creates a new DeactivateAccountUseCase instance.
func NewDeactivateAccountUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *DeactivateAccountUseCase {
	return &DeactivateAccountUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the password, deactivates the user and revokes every refresh token.
func (uc *DeactivateAccountUseCase) Execute(ctx context.Context, input DeactivateAccountInput) (*DeactivateAccountOutput, error) {
	if input.Password == "" {
		return nil, domainerror.NewValidationError("password", "password is required")
	}

	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeIncorrectPassword,
			"password is incorrect",
			domainerror.ErrIncorrectPassword,
		)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to invalidate user tokens: %w", err)
	}

	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to deactivate user: %w", err)
	}

	return &DeactivateAccountOutput{Message: "Account deactivated successfully"}, nil
}
