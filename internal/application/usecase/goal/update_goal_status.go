package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// UpdateGoalStatusInput represents a manual status change.
type UpdateGoalStatusInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Status entity.GoalStatus
}

// UpdateGoalStatusOutput is the goal after the change.
type UpdateGoalStatusOutput struct {
	Goal *entity.Goal
}

// UpdateGoalStatusUseCase sets a goal to active, completed, paused or cancelled.
// Completing a goal manually stamps completedAt but leaves the current amount as is.
type UpdateGoalStatusUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalStatusUseCase creates a new UpdateGoalStatusUseCase instance.
func NewUpdateGoalStatusUseCase(goalRepo adapter.GoalRepository) *UpdateGoalStatusUseCase {
	return &UpdateGoalStatusUseCase{goalRepo: goalRepo}
}

// Execute performs the status change.
func (uc *UpdateGoalStatusUseCase) Execute(ctx context.Context, input UpdateGoalStatusInput) (*UpdateGoalStatusOutput, error) {
	if !input.Status.IsValid() {
		return nil, domainerror.NewValidationError("status", "status must be one of active, completed, paused, cancelled")
	}

	now := time.Now().UTC()
	goal, err := uc.goalRepo.Update(ctx, input.GoalID, input.UserID, func(goal *entity.Goal) error {
		goal.SetStatus(input.Status, now)
		return nil
	})
	if err != nil {
		return nil, wrapRepoError(err, "failed to update goal status")
	}
	return &UpdateGoalStatusOutput{Goal: goal}, nil
}
