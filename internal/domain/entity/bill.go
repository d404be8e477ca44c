package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillCategory is the closed set of bill categories.
type BillCategory string

const (
	BillCategoryUtilities    BillCategory = "utilities"
	BillCategoryRent         BillCategory = "rent"
	BillCategoryInsurance    BillCategory = "insurance"
	BillCategorySubscription BillCategory = "subscription"
	BillCategoryLoan         BillCategory = "loan"
	BillCategoryMortgage     BillCategory = "mortgage"
	BillCategoryCreditCard   BillCategory = "credit_card"
	BillCategoryPhone        BillCategory = "phone"
	BillCategoryInternet     BillCategory = "internet"
	BillCategoryOther        BillCategory = "other"
)

// BillCategories lists every valid bill category.
var BillCategories = []BillCategory{
	BillCategoryUtilities,
	BillCategoryRent,
	BillCategoryInsurance,
	BillCategorySubscription,
	BillCategoryLoan,
	BillCategoryMortgage,
	BillCategoryCreditCard,
	BillCategoryPhone,
	BillCategoryInternet,
	BillCategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c BillCategory) IsValid() bool {
	for _, known := range BillCategories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	DefaultReminderDays = 3
	DueSoonWindow       = 7 * 24 * time.Hour
	UpcomingWindowDays  = 30
)

// PaymentRecord is one entry of a bill's payment history.
type PaymentRecord struct {
	ID            uuid.UUID
	BillID        uuid.UUID
	PaymentDate   time.Time
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Reference     string
}

// Bill represents a recurring or one-time obligation.
type Bill struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Description    string
	Amount         decimal.Decimal
	Category       BillCategory
	DueDate        time.Time
	Frequency      Frequency
	IsActive       bool
	IsAutoPaid     bool
	LastPaid       *time.Time
	NextDueDate    *time.Time
	PaymentMethod  PaymentMethod
	ReminderDays   int
	GracePeriod    int
	LateFee        decimal.Decimal
	Vendor         string
	AccountNumber  string
	Tags           []string
	PaymentHistory []PaymentRecord
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBill creates an active bill with the default reminder lead and payment method.
func NewBill(userID uuid.UUID, title string, amount decimal.Decimal, category BillCategory, dueDate time.Time, frequency Frequency) *Bill {
	now := time.Now().UTC()
	if frequency == "" {
		frequency = FrequencyMonthly
	}

	b := &Bill{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Amount:         amount,
		Category:       category,
		DueDate:        dueDate.UTC(),
		Frequency:      frequency,
		IsActive:       true,
		PaymentMethod:  PaymentMethodBankTransfer,
		ReminderDays:   DefaultReminderDays,
		LateFee:        decimal.Zero,
		Tags:           []string{},
		PaymentHistory: []PaymentRecord{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	b.RefreshNextDueDate()
	return b
}

// RefreshNextDueDate recomputes NextDueDate from the current due date.
func (b *Bill) RefreshNextDueDate() {
	if next, ok := NextDueDate(b.Frequency, b.DueDate); ok && !b.DueDate.IsZero() {
		b.NextDueDate = &next
		return
	}
	b.NextDueDate = nil
}

// DaysUntilDue returns whole calendar days between today and the due date,
// negative once the date has passed. Nil when the bill has no due date.
func (b *Bill) DaysUntilDue(now time.Time) *int {
	if b.DueDate.IsZero() {
		return nil
	}
	diff := midnight(b.DueDate).Sub(midnight(now))
	days := int(math.Ceil(diff.Hours() / 24))
	return &days
}

// IsOverdue is true only for active bills whose due date has passed.
func (b *Bill) IsOverdue(now time.Time) bool {
	return b.IsActive && !b.DueDate.IsZero() && now.After(b.DueDate)
}

// IsDueSoon is true when the due date falls within the reminder lead time.
func (b *Bill) IsDueSoon(now time.Time) bool {
	days := b.DaysUntilDue(now)
	return days != nil && *days >= 0 && *days <= b.ReminderDays
}

// TotalPaid sums the payment history.
func (b *Bill) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.PaymentHistory {
		total = total.Add(p.Amount)
	}
	return total
}

// DaysOverdue returns the number of full days since the due date.
func (b *Bill) DaysOverdue(now time.Time) int {
	if b.DueDate.IsZero() || !now.After(b.DueDate) {
		return 0
	}
	return int(now.Sub(b.DueDate).Hours() / 24)
}

// AmountWithLateFee adds the late fee once the grace period has run out.
func (b *Bill) AmountWithLateFee(now time.Time) decimal.Decimal {
	if b.DaysOverdue(now) > b.GracePeriod {
		return b.Amount.Add(b.LateFee)
	}
	return b.Amount
}

// MarkPaid records a payment made at now. One-time bills are deactivated and
// keep their due date; recurring bills move their due date one interval past now.
func (b *Bill) MarkPaid(now time.Time, amount decimal.Decimal, method PaymentMethod, reference string) PaymentRecord {
	now = now.UTC()
	if amount.IsZero() {
		amount = b.Amount
	}
	if method == "" {
		method = b.PaymentMethod
	}

	record := PaymentRecord{
		ID:            uuid.New(),
		BillID:        b.ID,
		PaymentDate:   now,
		Amount:        amount,
		PaymentMethod: method,
		Reference:     reference,
	}
	b.PaymentHistory = append(b.PaymentHistory, record)
	b.LastPaid = &now

	if next, ok := NextDueDate(b.Frequency, now); ok {
		b.DueDate = next
		b.RefreshNextDueDate()
	} else {
		b.IsActive = false
		b.NextDueDate = nil
	}
	b.UpdatedAt = now

	return record
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
