package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID    uuid.UUID
	Category  *entity.ExpenseCategory
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Tags      []string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ListExpensesOutput is one page of expenses plus stats over every match.
type ListExpensesOutput struct {
	Expenses   []*entity.Expense
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	Stats      adapter.ExpenseStats
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute fetches the page and the stats concurrently.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{
		UserID:    input.UserID,
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		MinAmount: input.MinAmount,
		MaxAmount: input.MaxAmount,
		Tags:      entity.NormalizeTags(input.Tags),
		Search:    input.Search,
	}
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = "date"
	}
	sort := adapter.ListSort{Field: sortBy, Order: adapter.ParseSortOrder(input.SortOrder, adapter.SortDesc)}
	pagination := adapter.NewPagination(input.Page, input.Limit)

	var (
		page  *adapter.ExpenseListResult
		stats *adapter.ExpenseStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = uc.expenseRepo.FindByFilter(gctx, filter, sort, pagination)
		if err != nil {
			return fmt.Errorf("failed to list expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = uc.expenseRepo.GetStats(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to compute expense stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListExpensesOutput{
		Expenses:   page.Expenses,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Stats:      *stats,
	}, nil
}
