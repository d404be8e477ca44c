// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Category      entity.GoalCategory // Optional, defaults to savings
	Priority      entity.GoalPriority // Optional, defaults to medium
	AutoUpdate    bool
	Tags          []string
	Milestones    []MilestoneInput
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation. A goal created fully funded starts completed.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	now := time.Now().UTC()

	goal := entity.NewGoal(input.UserID, input.Title, input.TargetAmount, input.Deadline)
	goal.Description = input.Description
	goal.CurrentAmount = input.CurrentAmount
	if input.Category != "" {
		goal.Category = input.Category
	}
	if input.Priority != "" {
		goal.Priority = input.Priority
	}
	goal.AutoUpdate = input.AutoUpdate
	goal.Tags = input.Tags
	goal.Milestones = toMilestones(goal.ID, input.Milestones)
	normalize(goal)

	if err := validate(goal); err != nil {
		return nil, err
	}
	if err := checkRules(goal, true, true, now); err != nil {
		return nil, err
	}
	if goal.TargetAmount.IsPositive() && goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.SetStatus(entity.GoalStatusCompleted, now)
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
