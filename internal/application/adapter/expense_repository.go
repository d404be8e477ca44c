package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

//go:generate mockgen -source=expense_repository.go -destination=expense_repository_mock.go -package=adapter

// ExpenseFilter defines filter options for listing expenses. UserID is always applied.
type ExpenseFilter struct {
	UserID    uuid.UUID
	Category  *entity.ExpenseCategory
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Tags      []string // matches expenses carrying any of the tags
	Search    string   // case-insensitive match on title or description
}

// ExpenseListResult represents one page of expenses.
type ExpenseListResult struct {
	Expenses   []*entity.Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ExpenseStats aggregates amounts over every expense matching a filter.
type ExpenseStats struct {
	Total   decimal.Decimal
	Average decimal.Decimal
	Max     decimal.Decimal
	Min     decimal.Decimal
	Count   int64
}

// PeriodTotal is an amount rollup for one period bucket, keyed as
// SummaryPeriod describes.
type PeriodTotal struct {
	Period  string
	Total   decimal.Decimal
	Count   int64
	Average decimal.Decimal
}

// CategoryTotal is an amount rollup for one category value.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int64
	Average  decimal.Decimal
}

// ExpenseRepository defines the interface for expense persistence operations.
// Every lookup and mutation is scoped to the owning user.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByIDForUser retrieves an expense owned by userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// Update updates an existing expense owned by expense.UserID.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindByFilter retrieves one sorted page of expenses.
	FindByFilter(ctx context.Context, filter ExpenseFilter, sort ListSort, pagination Pagination) (*ExpenseListResult, error)

	// GetStats aggregates every expense matching the filter.
	GetStats(ctx context.Context, filter ExpenseFilter) (*ExpenseStats, error)

	// SumByCategory groups the user's expenses by category, largest total first.
	SumByCategory(ctx context.Context, userID uuid.UUID) ([]CategoryTotal, error)

	// SumByPeriod groups the user's expenses into period buckets, oldest first.
	SumByPeriod(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod) ([]PeriodTotal, error)
}
