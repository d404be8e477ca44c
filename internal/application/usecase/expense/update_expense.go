package expense

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

// UpdateExpenseInput represents the input for expense update. Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Amount        *decimal.Decimal
	Category      *entity.ExpenseCategory
	Date          *time.Time
	Description   *string
	Tags          *[]string
	IsRecurring   *bool
	ReceiptURL    *string
	PaymentMethod *entity.PaymentMethod
	Location      *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute applies the changes and revalidates the whole expense before saving.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := findOwned(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Date != nil {
		expense.Date = input.Date.UTC()
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Tags != nil {
		expense.Tags = *input.Tags
	}
	if input.IsRecurring != nil {
		expense.IsRecurring = *input.IsRecurring
	}
	if input.ReceiptURL != nil {
		expense.ReceiptURL = *input.ReceiptURL
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.Location != nil {
		expense.Location = *input.Location
	}
	normalize(expense)

	if err := validate(expense); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if input.Date != nil {
		if err := checkDate(expense.Date, now); err != nil {
			return nil, err
		}
	}

	expense.UpdatedAt = now
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
