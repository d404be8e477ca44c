package bill

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// MarkBillPaidInput represents a payment against a bill.
type MarkBillPaidInput struct {
	BillID        uuid.UUID
	UserID        uuid.UUID
	Amount        *decimal.Decimal     // Optional, defaults to the bill amount
	PaymentMethod entity.PaymentMethod // Optional, defaults to the bill's method
	Reference     string
}

// MarkBillPaidOutput represents the bill after the payment.
type MarkBillPaidOutput struct {
	Bill    *entity.Bill
	Payment entity.PaymentRecord
}

// MarkBillPaidUseCase records a payment and advances the bill's schedule.
type MarkBillPaidUseCase struct {
	billRepo adapter.BillRepository
	now      func() time.Time
}

// NewMarkBillPaidUseCase creates a new MarkBillPaidUseCase instance.
func NewMarkBillPaidUseCase(billRepo adapter.BillRepository) *MarkBillPaidUseCase {
	return &MarkBillPaidUseCase{
		billRepo: billRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the payment inside one locked transaction.
func (uc *MarkBillPaidUseCase) Execute(ctx context.Context, input MarkBillPaidInput) (*MarkBillPaidOutput, error) {
	var v domainerror.Validator
	amount := decimal.Zero
	if input.Amount != nil {
		amount = *input.Amount
		v.Check(!amount.IsNegative(), "amount", "amount cannot be negative")
	}
	v.Check(input.PaymentMethod == "" || input.PaymentMethod.IsValidForBill(), "paymentMethod", "invalid payment method")
	v.Check(utf8.RuneCountInString(input.Reference) <= 100, "reference", "reference cannot exceed 100 characters")
	if err := v.Err(); err != nil {
		return nil, err
	}

	now := uc.now()
	var payment entity.PaymentRecord
	bill, err := uc.billRepo.MarkPaid(ctx, input.BillID, input.UserID, func(b *entity.Bill) entity.PaymentRecord {
		payment = b.MarkPaid(now, amount, input.PaymentMethod, input.Reference)
		return payment
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to mark bill as paid: %w", err)
	}

	return &MarkBillPaidOutput{Bill: bill, Payment: payment}, nil
}
