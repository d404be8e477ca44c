package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Category      *entity.GoalCategory
	Priority      *entity.GoalPriority
	AutoUpdate    *bool
	Tags          *[]string
	Milestones    *[]MilestoneInput
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Status changes go through
// UpdateGoalStatusUseCase and funding through the add/withdraw use cases.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute applies the changes to the locked goal, so a concurrent deposit or
// status change is never overwritten.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	now := time.Now().UTC()

	goal, err := uc.goalRepo.Update(ctx, input.GoalID, input.UserID, func(goal *entity.Goal) error {
		applyChanges(goal, input)
		normalize(goal)

		if err := validate(goal); err != nil {
			return err
		}
		if err := checkRules(goal, input.CurrentAmount != nil, input.Deadline != nil, now); err != nil {
			return err
		}
		if input.CurrentAmount != nil && goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
			goal.SetStatus(entity.GoalStatusCompleted, now)
		}
		goal.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, wrapRepoError(err, "failed to update goal")
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

func applyChanges(goal *entity.Goal, input UpdateGoalInput) {
	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline.UTC()
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.Priority != nil {
		goal.Priority = *input.Priority
	}
	if input.AutoUpdate != nil {
		goal.AutoUpdate = *input.AutoUpdate
	}
	if input.Tags != nil {
		goal.Tags = *input.Tags
	}
	if input.Milestones != nil {
		goal.Milestones = toMilestones(goal.ID, *input.Milestones)
	}
}
