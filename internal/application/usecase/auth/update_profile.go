package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// UpdateProfileInput carries the fields to change. Nil fields are left as they are.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Username  *string
	FirstName *string
	LastName  *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the profile changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}

	var v domainerror.Validator
	checkUsername(&v, user.Username)
	checkNames(&v, user.FirstName, user.LastName)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if input.Username != nil {
		taken, err := uc.userRepo.ExistsByUsername(ctx, user.Username, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check username existence: %w", err)
		}
		if taken {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUsernameExists,
				"username already taken",
				domainerror.ErrUsernameAlreadyExists,
			)
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
