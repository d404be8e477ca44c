package persistence

import (
	"context"
	"sync"
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

func seedBill(t *testing.T, repo adapter.BillRepository, userID uuid.UUID, title string, amount int64, due time.Time, frequency entity.Frequency) *entity.Bill {
	t.Helper()

	bill := entity.NewBill(userID, title, decimal.NewFromInt(amount), entity.BillCategoryUtilities, due, frequency)
	require.NoError(t, repo.Create(context.Background(), bill))
	return bill
}

func TestBillRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBillRepository(db)
	owner := createTestUser(t, db, "owner")

	bill := entity.NewBill(owner.ID, "Rent", decimal.NewFromInt(1200), entity.BillCategoryRent, day(2024, 1, 15), entity.FrequencyMonthly)
	require.NoError(t, repo.Create(ctx, bill))

	paidAt := day(2024, 1, 15)
	paid, err := repo.MarkPaid(ctx, bill.ID, owner.ID, func(b *entity.Bill) entity.PaymentRecord {
		return b.MarkPaid(paidAt, decimal.Zero, "", "")
	})
	require.NoError(t, err)
	assert.True(t, paid.DueDate.Equal(day(2024, 2, 15)))

	stored, err := repo.FindByIDForUser(ctx, bill.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, stored.DueDate.Equal(day(2024, 2, 15)))
	require.NotNil(t, stored.LastPaid)
	assert.True(t, stored.LastPaid.Equal(paidAt))
	require.Len(t, stored.PaymentHistory, 1)
	assert.True(t, stored.PaymentHistory[0].Amount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, stored.PaymentHistory[0].PaymentDate.Equal(paidAt))
	require.NotNil(t, stored.NextDueDate)
	assert.True(t, stored.NextDueDate.Equal(day(2024, 3, 15)))

	t.Run("another user's bill is not found", func(t *testing.T) {
		intruder := createTestUser(t, db, "intruder")
		called := false
		_, err := repo.MarkPaid(ctx, bill.ID, intruder.ID, func(b *entity.Bill) entity.PaymentRecord {
			called = true
			return b.MarkPaid(time.Now(), decimal.Zero, "", "")
		})
		assert.ErrorIs(t, err, domainerror.ErrBillNotFound)
		assert.False(t, called)
	})

	t.Run("concurrent payments each append one record", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.MarkPaid(ctx, bill.ID, owner.ID, func(b *entity.Bill) entity.PaymentRecord {
					return b.MarkPaid(time.Now(), decimal.NewFromInt(10), "", "")
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.FindByIDForUser(ctx, bill.ID, owner.ID)
		require.NoError(t, err)
		assert.Len(t, stored.PaymentHistory, 6)
	})
}

func TestBillRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBillRepository(db)
	owner := createTestUser(t, db, "owner")
	bill := seedBill(t, repo, owner.ID, "Water", 40, day(2024, 1, 10), entity.FrequencyMonthly)

	t.Run("edits interleaved with payments keep every payment", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := repo.MarkPaid(ctx, bill.ID, owner.ID, func(b *entity.Bill) entity.PaymentRecord {
					return b.MarkPaid(b.DueDate, decimal.Zero, "", "")
				})
				assert.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, bill.ID, owner.ID, func(b *entity.Bill) error {
					b.Vendor = "City water"
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.FindByIDForUser(ctx, bill.ID, owner.ID)
		require.NoError(t, err)
		assert.Len(t, stored.PaymentHistory, 5)
		assert.True(t, stored.DueDate.Equal(day(2024, 6, 10)), "got %s", stored.DueDate)
		assert.Equal(t, "City water", stored.Vendor)
	})

	t.Run("error from apply writes nothing", func(t *testing.T) {
		_, err := repo.Update(ctx, bill.ID, owner.ID, func(b *entity.Bill) error {
			b.Title = "Changed"
			return domainerror.ErrValidationFailed
		})
		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)

		stored, err := repo.FindByIDForUser(ctx, bill.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Water", stored.Title)
	})

	t.Run("another user's bill is not found", func(t *testing.T) {
		intruder := createTestUser(t, db, "intruder")
		_, err := repo.Update(ctx, bill.ID, intruder.ID, func(*entity.Bill) error { return nil })
		assert.ErrorIs(t, err, domainerror.ErrBillNotFound)
	})
}

func TestBillRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBillRepository(db)
	owner := createTestUser(t, db, "owner")
	now := time.Now().UTC()

	seedBill(t, repo, owner.ID, "Overdue power", 100, now.AddDate(0, 0, -3), entity.FrequencyMonthly)
	seedBill(t, repo, owner.ID, "Water soon", 40, now.AddDate(0, 0, 2), entity.FrequencyQuarterly)
	seedBill(t, repo, owner.ID, "Insurance later", 300, now.AddDate(0, 2, 0), entity.FrequencyYearly)
	paused := seedBill(t, repo, owner.ID, "Old gym", 25, now.AddDate(0, 0, -10), entity.FrequencyMonthly)
	_, err := repo.Update(ctx, paused.ID, owner.ID, func(b *entity.Bill) error {
		b.IsActive = false
		return nil
	})
	require.NoError(t, err)

	list := func(filter adapter.BillFilter) *adapter.BillListResult {
		filter.UserID = owner.ID
		filter.Now = now
		result, err := repo.FindByFilter(ctx, filter, adapter.ListSort{Field: "dueDate", Order: adapter.SortAsc}, adapter.NewPagination(1, 20))
		require.NoError(t, err)
		return result
	}

	assert.EqualValues(t, 4, list(adapter.BillFilter{}).Total)

	overdue := list(adapter.BillFilter{Overdue: true})
	require.EqualValues(t, 1, overdue.Total)
	assert.Equal(t, "Overdue power", overdue.Bills[0].Title)

	dueSoon := list(adapter.BillFilter{DueSoon: true})
	require.EqualValues(t, 1, dueSoon.Total)
	assert.Equal(t, "Water soon", dueSoon.Bills[0].Title)

	inactive := false
	assert.EqualValues(t, 1, list(adapter.BillFilter{IsActive: &inactive}).Total)

	yearly := entity.FrequencyYearly
	assert.EqualValues(t, 1, list(adapter.BillFilter{Frequency: &yearly}).Total)

	stats, err := repo.GetStats(ctx, owner.ID, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalBills)
	assert.EqualValues(t, 3, stats.ActiveBills)
	assert.EqualValues(t, 1, stats.OverdueBills)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(465)))

	upcoming, err := repo.FindActiveDueBetween(ctx, owner.ID, now, now.AddDate(0, 0, entity.UpcomingWindowDays))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Water soon", upcoming[0].Title)

	late, err := repo.FindActiveDueBefore(ctx, owner.ID, now)
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Equal(t, "Overdue power", late[0].Title)
}

func TestBillRepository_GetSummary(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBillRepository(db)
	owner := createTestUser(t, db, "owner")
	now := time.Now().UTC()

	first := seedBill(t, repo, owner.ID, "Power", 100, now.AddDate(0, 0, 5), entity.FrequencyMonthly)
	seedBill(t, repo, owner.ID, "Internet", 60, now.AddDate(0, 0, 9), entity.FrequencyMonthly)
	seedBill(t, repo, owner.ID, "Car tax", 240, now.AddDate(0, 1, 0), entity.FrequencyYearly)

	_, err := repo.MarkPaid(ctx, first.ID, owner.ID, func(b *entity.Bill) entity.PaymentRecord {
		return b.MarkPaid(now, decimal.NewFromInt(90), entity.PaymentMethodCash, "")
	})
	require.NoError(t, err)

	summary, err := repo.GetSummary(ctx, owner.ID, now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.TotalBills)
	assert.EqualValues(t, 0, summary.InactiveBills)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(90)))
	require.Len(t, summary.Frequencies, 2)
	assert.Equal(t, entity.FrequencyMonthly, summary.Frequencies[0].Frequency)
	assert.EqualValues(t, 2, summary.Frequencies[0].Count)
	require.Len(t, summary.Categories, 1)
	assert.EqualValues(t, 3, summary.Categories[0].ActiveCount)
}

func TestBillRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBillRepository(db)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	bill := seedBill(t, repo, owner.ID, "Phone", 30, time.Now().AddDate(0, 0, 3), entity.FrequencyMonthly)

	assert.ErrorIs(t, repo.Delete(ctx, bill.ID, other.ID), domainerror.ErrBillNotFound)
	require.NoError(t, repo.Delete(ctx, bill.ID, owner.ID))

	_, err := repo.FindByIDForUser(ctx, bill.ID, owner.ID)
	assert.ErrorIs(t, err, domainerror.ErrBillNotFound)
}
