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

const upcomingWeeks = 4

// GetUpcomingBillsInput represents the input for the upcoming bills report.
type GetUpcomingBillsInput struct {
	UserID uuid.UUID
}

// AmountSummary is a count/total/average triple.
type AmountSummary struct {
	TotalBills    int
	TotalAmount   decimal.Decimal
	AverageAmount decimal.Decimal
}

// WeekBucket groups upcoming bills into one seven-day window [StartDate, EndDate).
type WeekBucket struct {
	Week        int
	StartDate   time.Time
	EndDate     time.Time
	Bills       []*entity.Bill
	TotalAmount decimal.Decimal
}

// GetUpcomingBillsOutput lists active bills due in the next 30 days.
type GetUpcomingBillsOutput struct {
	Bills           []*entity.Bill
	Summary         AmountSummary
	WeeklyBreakdown []WeekBucket
	Now             time.Time
}

// GetUpcomingBillsUseCase builds the upcoming bills report.
type GetUpcomingBillsUseCase struct {
	billRepo adapter.BillRepository
	now      func() time.Time
}

// NewGetUpcomingBillsUseCase creates a new GetUpcomingBillsUseCase instance.
func NewGetUpcomingBillsUseCase(billRepo adapter.BillRepository) *GetUpcomingBillsUseCase {
	return &GetUpcomingBillsUseCase{
		billRepo: billRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute loads active bills due within the window and splits the first four weeks.
func (uc *GetUpcomingBillsUseCase) Execute(ctx context.Context, input GetUpcomingBillsInput) (*GetUpcomingBillsOutput, error) {
	now := uc.now()
	bills, err := uc.billRepo.FindActiveDueBetween(ctx, input.UserID, now, now.AddDate(0, 0, entity.UpcomingWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming bills: %w", err)
	}

	weeks := make([]WeekBucket, upcomingWeeks)
	for i := range weeks {
		start := now.AddDate(0, 0, 7*i)
		weeks[i] = WeekBucket{
			Week:        i + 1,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 7),
			Bills:       []*entity.Bill{},
			TotalAmount: decimal.Zero,
		}
	}
	for _, b := range bills {
		for i := range weeks {
			w := &weeks[i]
			if !b.DueDate.Before(w.StartDate) && b.DueDate.Before(w.EndDate) {
				w.Bills = append(w.Bills, b)
				w.TotalAmount = w.TotalAmount.Add(b.Amount)
				break
			}
		}
	}

	return &GetUpcomingBillsOutput{
		Bills:           bills,
		Summary:         summarize(bills, func(b *entity.Bill) decimal.Decimal { return b.Amount }),
		WeeklyBreakdown: weeks,
		Now:             now,
	}, nil
}

func summarize(bills []*entity.Bill, amount func(*entity.Bill) decimal.Decimal) AmountSummary {
	total := decimal.Zero
	for _, b := range bills {
		total = total.Add(amount(b))
	}
	avg := decimal.Zero
	if len(bills) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(bills)))).Round(2)
	}
	return AmountSummary{
		TotalBills:    len(bills),
		TotalAmount:   total,
		AverageAmount: avg,
	}
}
