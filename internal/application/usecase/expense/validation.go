package expense

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

var (
	minAmount = decimal.RequireFromString("0.01")
	maxAmount = decimal.NewFromInt(1_000_000)
)

// validate checks every field of e and reports all problems at once.
func validate(e *entity.Expense) error {
	var v domainerror.Validator

	title := utf8.RuneCountInString(e.Title)
	v.Check(title >= 2 && title <= 100, "title", "title must be between 2 and 100 characters")
	v.Check(e.Amount.GreaterThanOrEqual(minAmount), "amount", "amount must be at least 0.01")
	v.Check(e.Amount.LessThanOrEqual(maxAmount), "amount", "amount cannot exceed 1,000,000")
	v.Check(e.Category.IsValid(), "category", "invalid category")
	v.Check(utf8.RuneCountInString(e.Description) <= 500, "description", "description cannot exceed 500 characters")
	v.Check(utf8.RuneCountInString(e.Location) <= 100, "location", "location cannot exceed 100 characters")
	v.Check(e.PaymentMethod.IsValidForExpense(), "paymentMethod", "invalid payment method")
	for _, tag := range e.Tags {
		if utf8.RuneCountInString(tag) > entity.MaxTagLength {
			v.Add("tags", "each tag cannot exceed 30 characters")
			break
		}
	}

	return v.Err()
}

func checkDate(date, now time.Time) error {
	if date.After(now) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDateInFuture,
			"expense date cannot be in the future",
			domainerror.ErrExpenseDateInFuture,
		)
	}
	return nil
}

func normalize(e *entity.Expense) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Location = strings.TrimSpace(e.Location)
	e.ReceiptURL = strings.TrimSpace(e.ReceiptURL)
	e.Tags = entity.NormalizeTags(e.Tags)
}

func notFound(err error) error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		err,
	)
}
