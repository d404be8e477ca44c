package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

//go:generate mockgen -source=bill_repository.go -destination=bill_repository_mock.go -package=adapter

// BillFilter defines filter options for listing bills. UserID is always applied.
type BillFilter struct {
	UserID    uuid.UUID
	Category  *entity.BillCategory
	Frequency *entity.Frequency
	IsActive  *bool
	Overdue   bool // active bills due before Now
	DueSoon   bool // active bills due within entity.DueSoonWindow of Now
	Now       time.Time
}

// BillListResult represents one page of bills.
type BillListResult struct {
	Bills      []*entity.Bill
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BillStats is the summary block returned with a bill listing.
type BillStats struct {
	TotalBills    int64
	ActiveBills   int64
	OverdueBills  int64
	TotalAmount   decimal.Decimal
	AverageAmount decimal.Decimal
}

// BillCategoryStats is the per-category rollup in the bill summary.
type BillCategoryStats struct {
	Category    entity.BillCategory
	Count       int64
	TotalAmount decimal.Decimal
	ActiveCount int64
}

// BillFrequencyStats is the per-frequency rollup in the bill summary.
type BillFrequencyStats struct {
	Frequency   entity.Frequency
	Count       int64
	TotalAmount decimal.Decimal
}

// BillSummary is the full statistics report for a user's bills.
type BillSummary struct {
	TotalBills    int64
	ActiveBills   int64
	InactiveBills int64
	OverdueBills  int64
	TotalAmount   decimal.Decimal
	AverageAmount decimal.Decimal
	TotalPaid     decimal.Decimal
	Categories    []BillCategoryStats
	Frequencies   []BillFrequencyStats
}

// BillRepository defines the interface for bill persistence operations.
// Every lookup and mutation is scoped to the owning user.
type BillRepository interface {
	// Create creates a new bill in the database.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByIDForUser retrieves a bill, with its payment history, owned by userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Bill, error)

	// Update locks the bill, lets apply change it and saves the bill's own
	// fields in the same transaction. Payment history is not touched. When
	// apply returns an error nothing is written and that error is returned.
	Update(ctx context.Context, id, userID uuid.UUID, apply func(bill *entity.Bill) error) (*entity.Bill, error)

	// Delete removes a bill owned by userID together with its payment history.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindByFilter retrieves one sorted page of bills.
	FindByFilter(ctx context.Context, filter BillFilter, sort ListSort, pagination Pagination) (*BillListResult, error)

	// GetStats aggregates all of the user's bills.
	GetStats(ctx context.Context, userID uuid.UUID, now time.Time) (*BillStats, error)

	// GetSummary builds the overview, category and frequency rollups.
	GetSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*BillSummary, error)

	// FindActiveDueBetween returns active bills with from <= dueDate <= to, earliest first.
	FindActiveDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Bill, error)

	// FindActiveDueBefore returns active bills with dueDate < before, earliest first.
	FindActiveDueBefore(ctx context.Context, userID uuid.UUID, before time.Time) ([]*entity.Bill, error)

	// MarkPaid locks the bill, applies pay to it and persists the bill together
	// with the payment record pay returns, all in one transaction.
	MarkPaid(ctx context.Context, id, userID uuid.UUID, pay func(bill *entity.Bill) entity.PaymentRecord) (*entity.Bill, error)
}
