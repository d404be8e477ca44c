package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// GetExpenseSummaryInput represents the input for the expense summary.
type GetExpenseSummaryInput struct {
	UserID uuid.UUID
	Period string // day, week, month or year; anything else means month
}

// GetExpenseSummaryOutput holds per-period and per-category rollups.
type GetExpenseSummaryOutput struct {
	Period        entity.SummaryPeriod
	PeriodStats   []adapter.PeriodTotal
	CategoryStats []adapter.CategoryTotal
}

// GetExpenseSummaryUseCase builds the expense summary report.
type GetExpenseSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseSummaryUseCase creates a new GetExpenseSummaryUseCase instance.
func NewGetExpenseSummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseSummaryUseCase {
	return &GetExpenseSummaryUseCase{expenseRepo: expenseRepo}
}

// Execute builds the summary. Period buckets are sorted by key, categories by total descending.
func (uc *GetExpenseSummaryUseCase) Execute(ctx context.Context, input GetExpenseSummaryInput) (*GetExpenseSummaryOutput, error) {
	period := entity.ParseSummaryPeriod(input.Period)

	var (
		periods    []adapter.PeriodTotal
		categories []adapter.CategoryTotal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		periods, err = uc.expenseRepo.SumByPeriod(gctx, input.UserID, period)
		if err != nil {
			return fmt.Errorf("failed to sum expenses by period: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = uc.expenseRepo.SumByCategory(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to sum expenses by category: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetExpenseSummaryOutput{
		Period:        period,
		PeriodStats:   periods,
		CategoryStats: categories,
	}, nil
}
