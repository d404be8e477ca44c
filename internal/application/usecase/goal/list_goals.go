package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID    uuid.UUID
	Status    *entity.GoalStatus
	Category  *entity.GoalCategory
	Priority  *entity.GoalPriority
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ListGoalsOutput is one page of goals plus stats over all of the user's goals.
type ListGoalsOutput struct {
	Goals      []*entity.Goal
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	Stats      adapter.GoalStats
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute fetches the page and the stats concurrently.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	filter := adapter.GoalFilter{
		UserID:   input.UserID,
		Status:   input.Status,
		Category: input.Category,
		Priority: input.Priority,
	}
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sort := adapter.ListSort{Field: sortBy, Order: adapter.ParseSortOrder(input.SortOrder, adapter.SortDesc)}
	pagination := adapter.NewPagination(input.Page, input.Limit)

	var (
		page  *adapter.GoalListResult
		stats *adapter.GoalStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = uc.goalRepo.FindByFilter(gctx, filter, sort, pagination)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = uc.goalRepo.GetStats(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to compute goal stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListGoalsOutput{
		Goals:      page.Goals,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Stats:      *stats,
	}, nil
}
