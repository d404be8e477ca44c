package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is the closed set of expense categories.
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "food"
	ExpenseCategoryTransport     ExpenseCategory = "transport"
	ExpenseCategoryEntertainment ExpenseCategory = "entertainment"
	ExpenseCategoryUtilities     ExpenseCategory = "utilities"
	ExpenseCategoryHealthcare    ExpenseCategory = "healthcare"
	ExpenseCategoryShopping      ExpenseCategory = "shopping"
	ExpenseCategoryEducation     ExpenseCategory = "education"
	ExpenseCategoryTravel        ExpenseCategory = "travel"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

// ExpenseCategories lists every valid expense category.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryFood,
	ExpenseCategoryTransport,
	ExpenseCategoryEntertainment,
	ExpenseCategoryUtilities,
	ExpenseCategoryHealthcare,
	ExpenseCategoryShopping,
	ExpenseCategoryEducation,
	ExpenseCategoryTravel,
	ExpenseCategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense represents a single spending event.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Amount        decimal.Decimal
	Category      ExpenseCategory
	Date          time.Time
	Description   string
	Tags          []string
	IsRecurring   bool
	ReceiptURL    string
	PaymentMethod PaymentMethod
	Location      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense. A zero date means "now" and an empty
// payment method defaults to cash.
func NewExpense(userID uuid.UUID, title string, amount decimal.Decimal, category ExpenseCategory, date time.Time) *Expense {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Amount:        amount,
		Category:      category,
		Date:          date.UTC(),
		Tags:          []string{},
		PaymentMethod: PaymentMethodCash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
