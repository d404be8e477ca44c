package bill

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

func validate(b *entity.Bill) error {
	var v domainerror.Validator

	title := utf8.RuneCountInString(b.Title)
	v.Check(title >= 2 && title <= 100, "title", "title must be between 2 and 100 characters")
	v.Check(utf8.RuneCountInString(b.Description) <= 500, "description", "description cannot exceed 500 characters")
	v.Check(b.Amount.GreaterThanOrEqual(minAmount), "amount", "amount must be at least 0.01")
	v.Check(b.Amount.LessThanOrEqual(maxAmount), "amount", "amount cannot exceed 1,000,000")
	v.Check(b.Category.IsValid(), "category", "invalid category")
	v.Check(!b.DueDate.IsZero(), "dueDate", "due date is required")
	v.Check(b.Frequency.IsValid(), "frequency", "invalid frequency")
	v.Check(b.PaymentMethod.IsValidForBill(), "paymentMethod", "invalid payment method")
	v.Check(b.ReminderDays >= 0 && b.ReminderDays <= 30, "reminderDays", "reminder days must be between 0 and 30")
	v.Check(b.GracePeriod >= 0 && b.GracePeriod <= 30, "gracePeriod", "grace period must be between 0 and 30")
	v.Check(!b.LateFee.IsNegative(), "lateFee", "late fee cannot be negative")
	v.Check(utf8.RuneCountInString(b.Vendor) <= 100, "vendor", "vendor cannot exceed 100 characters")
	v.Check(utf8.RuneCountInString(b.AccountNumber) <= 50, "accountNumber", "account number cannot exceed 50 characters")
	for _, tag := range b.Tags {
		if utf8.RuneCountInString(tag) > entity.MaxTagLength {
			v.Add("tags", "each tag cannot exceed 30 characters")
			break
		}
	}

	return v.Err()
}

// checkDueDate accepts any time from the start of today (UTC) onwards.
func checkDueDate(due, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(today) {
		return domainerror.NewBillError(
			domainerror.ErrCodeDueDateInPast,
			"due date cannot be in the past",
			domainerror.ErrDueDateInPast,
		)
	}
	return nil
}

func normalize(b *entity.Bill) {
	b.Title = strings.TrimSpace(b.Title)
	b.Description = strings.TrimSpace(b.Description)
	b.Vendor = strings.TrimSpace(b.Vendor)
	b.AccountNumber = strings.TrimSpace(b.AccountNumber)
	b.Tags = entity.NormalizeTags(b.Tags)
}

func notFound(err error) error {
	return domainerror.NewBillError(
		domainerror.ErrCodeBillNotFound,
		"bill not found",
		err,
	)
}
