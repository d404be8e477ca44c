// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	Title         string
	Amount        decimal.Decimal
	Category      entity.ExpenseCategory
	Date          *time.Time // Optional, defaults to now
	Description   string
	Tags          []string
	IsRecurring   bool
	ReceiptURL    string
	PaymentMethod entity.PaymentMethod // Optional, defaults to cash
	Location      string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	now := time.Now().UTC()

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	expense := entity.NewExpense(input.UserID, input.Title, input.Amount, input.Category, date)
	expense.Description = input.Description
	expense.Tags = input.Tags
	expense.IsRecurring = input.IsRecurring
	expense.ReceiptURL = input.ReceiptURL
	expense.Location = input.Location
	if input.PaymentMethod != "" {
		expense.PaymentMethod = input.PaymentMethod
	}
	normalize(expense)

	if err := validate(expense); err != nil {
		return nil, err
	}
	if err := checkDate(expense.Date, now); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
