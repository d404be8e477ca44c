package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// GetOverdueBillsInput represents the input for the overdue bills report.
type GetOverdueBillsInput struct {
	UserID uuid.UUID
}

// GetOverdueBillsOutput lists active bills past their due date.
type GetOverdueBillsOutput struct {
	Bills   []*entity.Bill
	Summary AmountSummary
	Now     time.Time
}

// GetOverdueBillsUseCase builds the overdue bills report.
type GetOverdueBillsUseCase struct {
	billRepo adapter.BillRepository
	now      func() time.Time
}

// NewGetOverdueBillsUseCase creates a new GetOverdueBillsUseCase instance.
func NewGetOverdueBillsUseCase(billRepo adapter.BillRepository) *GetOverdueBillsUseCase {
	return &GetOverdueBillsUseCase{
		billRepo: billRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute totals overdue bills, adding late fees once the grace period has run out.
func (uc *GetOverdueBillsUseCase) Execute(ctx context.Context, input GetOverdueBillsInput) (*GetOverdueBillsOutput, error) {
	now := uc.now()
	bills, err := uc.billRepo.FindActiveDueBefore(ctx, input.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load overdue bills: %w", err)
	}

	return &GetOverdueBillsOutput{
		Bills:   bills,
		Summary: summarize(bills, func(b *entity.Bill) decimal.Decimal { return b.AmountWithLateFee(now) }),
		Now:     now,
	}, nil
}
