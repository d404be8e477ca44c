package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
)

// GetBillSummaryInput represents the input for bill statistics.
type GetBillSummaryInput struct {
	UserID uuid.UUID
}

// GetBillSummaryUseCase builds the bill statistics report.
type GetBillSummaryUseCase struct {
	billRepo adapter.BillRepository
}

// NewGetBillSummaryUseCase creates a new GetBillSummaryUseCase instance.
func NewGetBillSummaryUseCase(billRepo adapter.BillRepository) *GetBillSummaryUseCase {
	return &GetBillSummaryUseCase{billRepo: billRepo}
}

// Execute returns overview, category and frequency rollups.
func (uc *GetBillSummaryUseCase) Execute(ctx context.Context, input GetBillSummaryInput) (*adapter.BillSummary, error) {
	summary, err := uc.billRepo.GetSummary(ctx, input.UserID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to build bill summary: %w", err)
	}
	return summary, nil
}
