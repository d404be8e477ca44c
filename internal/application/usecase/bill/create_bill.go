// Package bill contains bill-related use cases.
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

// CreateBillInput represents the input for bill creation.
type CreateBillInput struct {
	UserID        uuid.UUID
	Title         string
	Description   string
	Amount        decimal.Decimal
	Category      entity.BillCategory
	DueDate       time.Time
	Frequency     entity.Frequency     // Optional, defaults to monthly
	IsAutoPaid    bool
	PaymentMethod entity.PaymentMethod // Optional, defaults to bank_transfer
	ReminderDays  *int                 // Optional, defaults to 3
	GracePeriod   int
	LateFee       decimal.Decimal
	Vendor        string
	AccountNumber string
	Tags          []string
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.Bill
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(billRepo adapter.BillRepository) *CreateBillUseCase {
	return &CreateBillUseCase{billRepo: billRepo}
}

// Execute performs the bill creation.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	bill := entity.NewBill(input.UserID, input.Title, input.Amount, input.Category, input.DueDate, input.Frequency)
	bill.Description = input.Description
	bill.IsAutoPaid = input.IsAutoPaid
	if input.PaymentMethod != "" {
		bill.PaymentMethod = input.PaymentMethod
	}
	if input.ReminderDays != nil {
		bill.ReminderDays = *input.ReminderDays
	}
	bill.GracePeriod = input.GracePeriod
	bill.LateFee = input.LateFee
	bill.Vendor = input.Vendor
	bill.AccountNumber = input.AccountNumber
	bill.Tags = input.Tags
	normalize(bill)

	if err := validate(bill); err != nil {
		return nil, err
	}
	if err := checkDueDate(bill.DueDate, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return &CreateBillOutput{Bill: bill}, nil
}
