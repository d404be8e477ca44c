package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// AuthenticateUserInput carries the raw bearer token of a request.
type AuthenticateUserInput struct {
	Token string
}

// AuthenticateUserOutput is the verified caller.
type AuthenticateUserOutput struct {
	User *entity.User
}

// AuthenticateUserUseCase resolves an access token to an active user.
type AuthenticateUserUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewAuthenticateUserUseCase creates a new AuthenticateUserUseCase instance.
func NewAuthenticateUserUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute verifies the token and loads its user. Each failure carries its own code.
func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, input AuthenticateUserInput) (*AuthenticateUserOutput, error) {
	if input.Token == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"Access denied. No token provided.",
			domainerror.ErrMissingToken,
		)
	}

	claims, err := uc.tokenService.ValidateAccessToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpiredToken) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"Token expired.",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"Invalid token.",
			domainerror.ErrInvalidToken,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"Invalid token. User not found.",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountDeactivated,
			"Account is deactivated.",
			domainerror.ErrAccountDeactivated,
		)
	}

	return &AuthenticateUserOutput{User: user}, nil
}
