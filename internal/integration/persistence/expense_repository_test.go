package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func seedExpense(t *testing.T, repo adapter.ExpenseRepository, userID uuid.UUID, title string, amount int64, category entity.ExpenseCategory, d int, tags ...string) *entity.Expense {
	t.Helper()

	expense := entity.NewExpense(userID, title, decimal.NewFromInt(amount), category, day(2024, 3, d))
	if len(tags) > 0 {
		expense.Tags = tags
	}
	require.NoError(t, repo.Create(context.Background(), expense))
	return expense
}

func TestExpenseRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	seedExpense(t, repo, owner.ID, "Weekly groceries", 80, entity.ExpenseCategoryFood, 1, "groceries", "weekly")
	seedExpense(t, repo, owner.ID, "Bus pass", 40, entity.ExpenseCategoryTransport, 5, "commute")
	seedExpense(t, repo, owner.ID, "Dinner out", 60, entity.ExpenseCategoryFood, 10)
	seedExpense(t, repo, owner.ID, "Concert", 120, entity.ExpenseCategoryEntertainment, 20, "music")
	seedExpense(t, repo, other.ID, "Groceries", 999, entity.ExpenseCategoryFood, 2, "groceries")

	sortByDate := adapter.ListSort{Field: "date", Order: adapter.SortDesc}
	page := adapter.NewPagination(1, 20)

	t.Run("scopes to the owner", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID}, sortByDate, page)
		require.NoError(t, err)
		assert.EqualValues(t, 4, result.Total)
		require.Len(t, result.Expenses, 4)
		assert.Equal(t, "Concert", result.Expenses[0].Title)
	})

	t.Run("filters by category", func(t *testing.T) {
		food := entity.ExpenseCategoryFood
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID, Category: &food}, sortByDate, page)
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Total)
	})

	t.Run("filters by inclusive date range", func(t *testing.T) {
		start, end := day(2024, 3, 5), day(2024, 3, 10)
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID, StartDate: &start, EndDate: &end}, sortByDate, page)
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Total)
	})

	t.Run("filters by amount range", func(t *testing.T) {
		minAmount, maxAmount := decimal.NewFromInt(50), decimal.NewFromInt(100)
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID, MinAmount: &minAmount, MaxAmount: &maxAmount}, sortByDate, page)
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Total)
	})

	t.Run("searches title case-insensitively", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID, Search: "GROCER"}, sortByDate, page)
		require.NoError(t, err)
		require.EqualValues(t, 1, result.Total)
		assert.Equal(t, "Weekly groceries", result.Expenses[0].Title)
	})

	t.Run("matches any tag", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID, Tags: []string{"weekly", "music"}}, sortByDate, page)
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Total)
	})

	t.Run("last page returns the remainder", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID}, adapter.ListSort{Field: "amount", Order: adapter.SortAsc}, adapter.NewPagination(2, 3))
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
		require.Len(t, result.Expenses, 1)
		assert.Equal(t, "Concert", result.Expenses[0].Title)
	})

	t.Run("unknown sort field falls back to date", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID}, adapter.ListSort{Field: "password", Order: adapter.SortAsc}, page)
		require.NoError(t, err)
		assert.Equal(t, "Weekly groceries", result.Expenses[0].Title)
	})
}

func TestExpenseRepository_SearchIsLiteral(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	owner := createTestUser(t, db, "owner")

	seedExpense(t, repo, owner.ID, "Shoes at 50% off", 70, entity.ExpenseCategoryShopping, 1)
	seedExpense(t, repo, owner.ID, "Bus pass", 40, entity.ExpenseCategoryTransport, 2)
	seedExpense(t, repo, owner.ID, "Gym_fee", 30, entity.ExpenseCategoryHealthcare, 3)

	search := func(text string) []string {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: owner.ID, Search: text}, adapter.ListSort{Field: "date"}, adapter.NewPagination(1, 20))
		require.NoError(t, err)
		titles := make([]string, len(result.Expenses))
		for i, e := range result.Expenses {
			titles[i] = e.Title
		}
		return titles
	}

	assert.Equal(t, []string{"Shoes at 50% off"}, search("%"))
	assert.Equal(t, []string{"Gym_fee"}, search("_"))
	assert.Empty(t, search("s_p"))
	assert.Equal(t, []string{"Bus pass"}, search("s p"))
}

func TestExpenseRepository_Stats(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	owner := createTestUser(t, db, "owner")

	seedExpense(t, repo, owner.ID, "Lunch", 10, entity.ExpenseCategoryFood, 1)
	seedExpense(t, repo, owner.ID, "Dinner", 30, entity.ExpenseCategoryFood, 2)
	seedExpense(t, repo, owner.ID, "Taxi", 50, entity.ExpenseCategoryTransport, 3)

	stats, err := repo.GetStats(ctx, adapter.ExpenseFilter{UserID: owner.ID})
	require.NoError(t, err)
	assert.True(t, stats.Total.Equal(decimal.NewFromInt(90)))
	assert.True(t, stats.Average.Equal(decimal.NewFromInt(30)))
	assert.True(t, stats.Max.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.Min.Equal(decimal.NewFromInt(10)))
	assert.EqualValues(t, 3, stats.Count)

	totals, err := repo.SumByCategory(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "transport", totals[0].Category)
	assert.Equal(t, "food", totals[1].Category)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(40)))
	assert.EqualValues(t, 2, totals[1].Count)

	months, err := repo.SumByPeriod(ctx, owner.ID, entity.SummaryPeriodMonth)
	require.NoError(t, err)
	require.Len(t, months, 1)
	assert.Equal(t, "2024-03", months[0].Period)
	assert.True(t, months[0].Total.Equal(decimal.NewFromInt(90)))
	assert.EqualValues(t, 3, months[0].Count)

	empty, err := repo.GetStats(ctx, adapter.ExpenseFilter{UserID: uuid.New()})
	require.NoError(t, err)
	assert.True(t, empty.Total.IsZero())
	assert.Zero(t, empty.Count)
}

func TestExpenseRepository_SumByPeriod(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	// 2024-01-01 is a Monday, so the first Sunday is 2024-01-07.
	at := func(userID uuid.UUID, title string, amount int64, date time.Time) {
		e := entity.NewExpense(userID, title, decimal.NewFromInt(amount), entity.ExpenseCategoryFood, date)
		require.NoError(t, repo.Create(ctx, e))
	}
	at(owner.ID, "Bakery", 10, time.Date(2024, time.January, 6, 23, 30, 0, 0, time.UTC))
	at(owner.ID, "Brunch", 25, time.Date(2024, time.January, 7, 9, 0, 0, 0, time.UTC))
	at(owner.ID, "Groceries", 15, time.Date(2024, time.January, 13, 18, 0, 0, 0, time.UTC))
	at(owner.ID, "Market", 40, time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC))
	at(owner.ID, "Cafe", 5, time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC))
	at(other.ID, "Elsewhere", 999, time.Date(2024, time.January, 7, 9, 0, 0, 0, time.UTC))

	type bucket struct {
		period string
		total  int64
		count  int64
	}
	tests := []struct {
		period entity.SummaryPeriod
		want   []bucket
	}{
		{entity.SummaryPeriodDay, []bucket{
			{"2024-01-06", 10, 1}, {"2024-01-07", 25, 1}, {"2024-01-13", 15, 1}, {"2024-03-05", 40, 1}, {"2025-02-01", 5, 1},
		}},
		{entity.SummaryPeriodWeek, []bucket{
			{"2024-00", 10, 1}, {"2024-01", 40, 2}, {"2024-09", 40, 1}, {"2025-04", 5, 1},
		}},
		{entity.SummaryPeriodMonth, []bucket{
			{"2024-01", 50, 3}, {"2024-03", 40, 1}, {"2025-02", 5, 1},
		}},
		{entity.SummaryPeriodYear, []bucket{
			{"2024", 90, 4}, {"2025", 5, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			totals, err := repo.SumByPeriod(ctx, owner.ID, tt.period)
			require.NoError(t, err)

			got := make([]bucket, len(totals))
			for i, pt := range totals {
				got[i] = bucket{period: pt.Period, total: pt.Total.IntPart(), count: pt.Count}
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("average is rounded to cents", func(t *testing.T) {
		totals, err := repo.SumByPeriod(ctx, owner.ID, entity.SummaryPeriodMonth)
		require.NoError(t, err)
		assert.True(t, totals[0].Average.Equal(decimal.RequireFromString("16.67")), totals[0].Average.String())
	})

	t.Run("no expenses", func(t *testing.T) {
		totals, err := repo.SumByPeriod(ctx, uuid.New(), entity.SummaryPeriodMonth)
		require.NoError(t, err)
		assert.Empty(t, totals)
	})
}

func TestExpenseRepository_OwnerScopedMutations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")

	expense := seedExpense(t, repo, owner.ID, "Coffee", 4, entity.ExpenseCategoryFood, 1)

	_, err := repo.FindByIDForUser(ctx, expense.ID, intruder.ID)
	assert.ErrorIs(t, err, domainerror.ErrExpenseNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, expense.ID, intruder.ID), domainerror.ErrExpenseNotFound)

	hijacked := *expense
	hijacked.UserID = intruder.ID
	hijacked.Title = "Stolen"
	assert.ErrorIs(t, repo.Update(ctx, &hijacked), domainerror.ErrExpenseNotFound)

	expense.Title = "Flat white"
	expense.Tags = []string{"cafe"}
	require.NoError(t, repo.Update(ctx, expense))

	found, err := repo.FindByIDForUser(ctx, expense.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flat white", found.Title)
	assert.Equal(t, []string{"cafe"}, found.Tags)

	require.NoError(t, repo.Delete(ctx, expense.ID, owner.ID))
	_, err = repo.FindByIDForUser(ctx, expense.ID, owner.ID)
	assert.ErrorIs(t, err, domainerror.ErrExpenseNotFound)
}
