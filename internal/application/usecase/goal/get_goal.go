package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// GetGoalInput represents the input for reading one goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of reading one goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles reading a single goal.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute loads the goal with its milestones.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByIDForUser(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, wrapRepoError(err, "failed to find goal")
	}
	return &GetGoalOutput{Goal: goal}, nil
}

func wrapRepoError(err error, msg string) error {
	if errors.Is(err, domainerror.ErrGoalNotFound) {
		return notFound(err)
	}
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
