package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

//go:generate mockgen -source=goal_repository.go -destination=goal_repository_mock.go -package=adapter

// GoalFilter defines filter options for listing goals. UserID is always applied.
type GoalFilter struct {
	UserID   uuid.UUID
	Status   *entity.GoalStatus
	Category *entity.GoalCategory
	Priority *entity.GoalPriority
}

// GoalListResult represents one page of goals.
type GoalListResult struct {
	Goals      []*entity.Goal
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// GoalStats is the summary block returned with a goal listing.
type GoalStats struct {
	TotalGoals      int64
	ActiveGoals     int64
	CompletedGoals  int64
	PausedGoals     int64
	TotalTarget     decimal.Decimal
	TotalCurrent    decimal.Decimal
	AverageProgress decimal.Decimal
}

// GoalCategoryStats is the per-category rollup in the goal summary.
type GoalCategoryStats struct {
	Category        entity.GoalCategory
	Count           int64
	TotalTarget     decimal.Decimal
	TotalCurrent    decimal.Decimal
	AverageProgress decimal.Decimal
}

// GoalPriorityStats is the per-priority rollup in the goal summary.
type GoalPriorityStats struct {
	Priority    entity.GoalPriority
	Count       int64
	TotalTarget decimal.Decimal
}

// GoalSummary is the full statistics report for a user's goals.
type GoalSummary struct {
	Overview   GoalStats
	Categories []GoalCategoryStats
	Priorities []GoalPriorityStats
}

// GoalRepository defines the interface for goal persistence operations.
// Every lookup and mutation is scoped to the owning user.
type GoalRepository interface {
	// Create creates a new goal and its milestones.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByIDForUser retrieves a goal, with milestones, owned by userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// Update locks the goal, lets apply change it and saves its fields and
	// milestones in the same transaction. When apply returns an error nothing
	// is written and that error is returned.
	Update(ctx context.Context, id, userID uuid.UUID, apply func(goal *entity.Goal) error) (*entity.Goal, error)

	// Delete removes a goal owned by userID together with its milestones.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindByFilter retrieves one sorted page of goals.
	FindByFilter(ctx context.Context, filter GoalFilter, sort ListSort, pagination Pagination) (*GoalListResult, error)

	// GetStats aggregates all of the user's goals.
	GetStats(ctx context.Context, userID uuid.UUID) (*GoalStats, error)

	// GetSummary builds the overview, category and priority rollups.
	GetSummary(ctx context.Context, userID uuid.UUID) (*GoalSummary, error)
}
