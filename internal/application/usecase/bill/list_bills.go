package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// ListBillsInput represents the input for listing bills.
type ListBillsInput struct {
	UserID    uuid.UUID
	Category  *entity.BillCategory
	Frequency *entity.Frequency
	IsActive  *bool
	IsOverdue bool
	IsDueSoon bool
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ListBillsOutput is one page of bills plus stats over all of the user's bills.
type ListBillsOutput struct {
	Bills      []*entity.Bill
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	Stats      adapter.BillStats
	Now        time.Time
}

// ListBillsUseCase handles listing bills logic.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{billRepo: billRepo}
}

// Execute fetches the page and the stats concurrently.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	now := time.Now().UTC()
	filter := adapter.BillFilter{
		UserID:    input.UserID,
		Category:  input.Category,
		Frequency: input.Frequency,
		IsActive:  input.IsActive,
		Overdue:   input.IsOverdue,
		DueSoon:   input.IsDueSoon,
		Now:       now,
	}
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = "dueDate"
	}
	sort := adapter.ListSort{Field: sortBy, Order: adapter.ParseSortOrder(input.SortOrder, adapter.SortAsc)}
	pagination := adapter.NewPagination(input.Page, input.Limit)

	var (
		page  *adapter.BillListResult
		stats *adapter.BillStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = uc.billRepo.FindByFilter(gctx, filter, sort, pagination)
		if err != nil {
			return fmt.Errorf("failed to list bills: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = uc.billRepo.GetStats(gctx, input.UserID, now)
		if err != nil {
			return fmt.Errorf("failed to compute bill stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListBillsOutput{
		Bills:      page.Bills,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Stats:      *stats,
		Now:        now,
	}, nil
}
