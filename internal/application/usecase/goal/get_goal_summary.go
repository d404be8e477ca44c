package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
)

// GetGoalSummaryUseCase builds the per-user goal statistics report.
type GetGoalSummaryUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalSummaryUseCase creates a new GetGoalSummaryUseCase instance.
func NewGetGoalSummaryUseCase(goalRepo adapter.GoalRepository) *GetGoalSummaryUseCase {
	return &GetGoalSummaryUseCase{goalRepo: goalRepo}
}

// Execute returns the overview with category and priority rollups.
func (uc *GetGoalSummaryUseCase) Execute(ctx context.Context, userID uuid.UUID) (*adapter.GoalSummary, error) {
	summary, err := uc.goalRepo.GetSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build goal summary: %w", err)
	}
	return summary, nil
}
