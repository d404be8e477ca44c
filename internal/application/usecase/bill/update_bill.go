package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// UpdateBillInput represents the input for bill update. Nil fields are left unchanged.
type UpdateBillInput struct {
	BillID        uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Description   *string
	Amount        *decimal.Decimal
	Category      *entity.BillCategory
	DueDate       *time.Time
	Frequency     *entity.Frequency
	IsActive      *bool
	IsAutoPaid    *bool
	PaymentMethod *entity.PaymentMethod
	ReminderDays  *int
	GracePeriod   *int
	LateFee       *decimal.Decimal
	Vendor        *string
	AccountNumber *string
	Tags          *[]string
}

// UpdateBillOutput represents the output of bill update.
type UpdateBillOutput struct {
	Bill *entity.Bill
}

// UpdateBillUseCase handles bill update logic.
type UpdateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(billRepo adapter.BillRepository) *UpdateBillUseCase {
	return &UpdateBillUseCase{billRepo: billRepo}
}

// Execute applies the changes to the locked bill, so a concurrent mark-paid is
// never overwritten. Payment history can only grow through mark-paid.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	now := time.Now().UTC()

	bill, err := uc.billRepo.Update(ctx, input.BillID, input.UserID, func(bill *entity.Bill) error {
		applyChanges(bill, input)
		normalize(bill)

		if err := validate(bill); err != nil {
			return err
		}
		if input.DueDate != nil || input.Frequency != nil {
			bill.RefreshNextDueDate()
		}
		bill.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, notFound(err)
		}
		var vErr *domainerror.ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return &UpdateBillOutput{Bill: bill}, nil
}

func applyChanges(bill *entity.Bill, input UpdateBillInput) {
	if input.Title != nil {
		bill.Title = *input.Title
	}
	if input.Description != nil {
		bill.Description = *input.Description
	}
	if input.Amount != nil {
		bill.Amount = *input.Amount
	}
	if input.Category != nil {
		bill.Category = *input.Category
	}
	if input.DueDate != nil {
		bill.DueDate = input.DueDate.UTC()
	}
	if input.Frequency != nil {
		bill.Frequency = *input.Frequency
	}
	if input.IsActive != nil {
		bill.IsActive = *input.IsActive
	}
	if input.IsAutoPaid != nil {
		bill.IsAutoPaid = *input.IsAutoPaid
	}
	if input.PaymentMethod != nil {
		bill.PaymentMethod = *input.PaymentMethod
	}
	if input.ReminderDays != nil {
		bill.ReminderDays = *input.ReminderDays
	}
	if input.GracePeriod != nil {
		bill.GracePeriod = *input.GracePeriod
	}
	if input.LateFee != nil {
		bill.LateFee = *input.LateFee
	}
	if input.Vendor != nil {
		bill.Vendor = *input.Vendor
	}
	if input.AccountNumber != nil {
		bill.AccountNumber = *input.AccountNumber
	}
	if input.Tags != nil {
		bill.Tags = *input.Tags
	}
}
