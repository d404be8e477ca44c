package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRepo(t *testing.T) *adapter.MockBillRepository {
	return adapter.NewMockBillRepository(gomock.NewController(t))
}

func TestCreateBillUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies defaults", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewCreateBillUseCase(repo)
		due := time.Now().UTC().AddDate(0, 0, 10)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		out, err := uc.Execute(ctx, CreateBillInput{
			UserID: userID, Title: "Internet", Amount: dec(60), Category: entity.BillCategoryInternet, DueDate: due,
		})

		require.NoError(t, err)
		b := out.Bill
		assert.Equal(t, entity.FrequencyMonthly, b.Frequency)
		assert.Equal(t, entity.PaymentMethodBankTransfer, b.PaymentMethod)
		assert.Equal(t, entity.DefaultReminderDays, b.ReminderDays)
		assert.True(t, b.IsActive)
		require.NotNil(t, b.NextDueDate)
		assert.True(t, b.NextDueDate.Equal(due.AddDate(0, 1, 0)))
	})

	t.Run("explicit zero reminder lead is kept", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewCreateBillUseCase(repo)
		zero := 0
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		out, err := uc.Execute(ctx, CreateBillInput{
			UserID: userID, Title: "Gym", Amount: dec(30), Category: entity.BillCategorySubscription,
			DueDate: time.Now().UTC().Add(time.Hour), ReminderDays: &zero,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, out.Bill.ReminderDays)
	})

	t.Run("due date earlier today is allowed, yesterday is not", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewCreateBillUseCase(repo)
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := uc.Execute(ctx, CreateBillInput{UserID: userID, Title: "Rent", Amount: dec(900), Category: entity.BillCategoryRent, DueDate: today})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateBillInput{UserID: userID, Title: "Rent", Amount: dec(900), Category: entity.BillCategoryRent, DueDate: today.Add(-time.Second)})
		var billErr *domainerror.BillError
		require.ErrorAs(t, err, &billErr)
		assert.Equal(t, domainerror.ErrCodeDueDateInPast, billErr.Code)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		uc := NewCreateBillUseCase(newRepo(t))
		reminder := 31

		_, err := uc.Execute(ctx, CreateBillInput{
			UserID: userID, Title: "R", Amount: dec(0), Category: "gym", Frequency: "daily",
			ReminderDays: &reminder, GracePeriod: -1, LateFee: dec(-5),
		})

		var verr *domainerror.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := map[string]bool{}
		for _, fe := range verr.Errors {
			fields[fe.Field] = true
		}
		for _, f := range []string{"title", "amount", "category", "dueDate", "frequency", "reminderDays", "gracePeriod", "lateFee"} {
			assert.True(t, fields[f], f)
		}
	})
}

func TestMarkBillPaidUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("monthly rent paid on its due date", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewMarkBillPaidUseCase(repo)
		uc.now = func() time.Time { return date(2024, time.January, 15) }

		stored := entity.NewBill(userID, "Rent", dec(1200), entity.BillCategoryRent, date(2024, time.January, 15), entity.FrequencyMonthly)
		repo.EXPECT().MarkPaid(ctx, stored.ID, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, pay func(*entity.Bill) entity.PaymentRecord) (*entity.Bill, error) {
				pay(stored)
				return stored, nil
			})

		out, err := uc.Execute(ctx, MarkBillPaidInput{BillID: stored.ID, UserID: userID})

		require.NoError(t, err)
		assert.True(t, out.Bill.DueDate.Equal(date(2024, time.February, 15)))
		require.NotNil(t, out.Bill.LastPaid)
		assert.True(t, out.Bill.LastPaid.Equal(date(2024, time.January, 15)))
		require.Len(t, out.Bill.PaymentHistory, 1)
		assert.True(t, out.Bill.PaymentHistory[0].Amount.Equal(dec(1200)))
		assert.True(t, out.Payment.Amount.Equal(dec(1200)))
	})

	t.Run("one-time bill is closed", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewMarkBillPaidUseCase(repo)
		due := date(2024, time.May, 1)
		stored := entity.NewBill(userID, "Car repair", dec(450), entity.BillCategoryOther, due, entity.FrequencyOnce)
		amount := dec(400)

		repo.EXPECT().MarkPaid(ctx, stored.ID, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, pay func(*entity.Bill) entity.PaymentRecord) (*entity.Bill, error) {
				pay(stored)
				return stored, nil
			})

		out, err := uc.Execute(ctx, MarkBillPaidInput{BillID: stored.ID, UserID: userID, Amount: &amount, PaymentMethod: entity.PaymentMethodCash})

		require.NoError(t, err)
		assert.False(t, out.Bill.IsActive)
		assert.True(t, out.Bill.DueDate.Equal(due))
		assert.Equal(t, entity.PaymentMethodCash, out.Payment.PaymentMethod)
		assert.True(t, out.Payment.Amount.Equal(amount))
	})

	t.Run("another user's bill", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewMarkBillPaidUseCase(repo)
		id := uuid.New()
		repo.EXPECT().MarkPaid(ctx, id, userID, gomock.Any()).Return(nil, domainerror.ErrBillNotFound)

		_, err := uc.Execute(ctx, MarkBillPaidInput{BillID: id, UserID: userID})

		var billErr *domainerror.BillError
		require.ErrorAs(t, err, &billErr)
		assert.Equal(t, domainerror.ErrCodeBillNotFound, billErr.Code)
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewMarkBillPaidUseCase(newRepo(t))
		amount := dec(-1)

		_, err := uc.Execute(ctx, MarkBillPaidInput{BillID: uuid.New(), UserID: userID, Amount: &amount})

		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)
	})
}

func TestUpdateBillUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	stored := func() *entity.Bill {
		b := entity.NewBill(userID, "Phone", dec(40), entity.BillCategoryPhone, date(2030, time.March, 1), entity.FrequencyMonthly)
		b.PaymentHistory = []entity.PaymentRecord{{ID: uuid.New(), Amount: dec(40)}}
		return b
	}
	// expectUpdate runs the change against b, as the repository does inside
	// its locked transaction.
	expectUpdate := func(repo *adapter.MockBillRepository, b *entity.Bill) {
		repo.EXPECT().
			Update(ctx, b.ID, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, apply func(*entity.Bill) error) (*entity.Bill, error) {
				if err := apply(b); err != nil {
					return nil, err
				}
				return b, nil
			})
	}

	t.Run("frequency change refreshes the next due date", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateBillUseCase(repo)
		b := stored()
		expectUpdate(repo, b)
		frequency := entity.FrequencyQuarterly

		out, err := uc.Execute(ctx, UpdateBillInput{BillID: b.ID, UserID: userID, Frequency: &frequency})

		require.NoError(t, err)
		require.NotNil(t, out.Bill.NextDueDate)
		assert.True(t, out.Bill.NextDueDate.Equal(date(2030, time.June, 1)))
		assert.Len(t, out.Bill.PaymentHistory, 1)
	})

	t.Run("title edit keeps a payment recorded meanwhile", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateBillUseCase(repo)
		b := stored()
		paidAt := date(2030, time.March, 1)
		b.MarkPaid(paidAt, decimal.Zero, "", "")
		expectUpdate(repo, b)
		title := "Mobile"

		out, err := uc.Execute(ctx, UpdateBillInput{BillID: b.ID, UserID: userID, Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Mobile", out.Bill.Title)
		assert.True(t, out.Bill.DueDate.Equal(date(2030, time.April, 1)))
		require.NotNil(t, out.Bill.LastPaid)
		assert.True(t, out.Bill.LastPaid.Equal(paidAt))
	})

	t.Run("invalid title", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateBillUseCase(repo)
		b := stored()
		expectUpdate(repo, b)
		title := "x"

		_, err := uc.Execute(ctx, UpdateBillInput{BillID: b.ID, UserID: userID, Title: &title})

		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)
	})

	t.Run("bill of another user", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateBillUseCase(repo)
		id := uuid.New()
		repo.EXPECT().Update(ctx, id, userID, gomock.Any()).Return(nil, domainerror.ErrBillNotFound)

		_, err := uc.Execute(ctx, UpdateBillInput{BillID: id, UserID: userID})

		var billErr *domainerror.BillError
		require.ErrorAs(t, err, &billErr)
		assert.Equal(t, domainerror.ErrCodeBillNotFound, billErr.Code)
	})
}

func TestGetUpcomingBillsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newRepo(t)
	uc := NewGetUpcomingBillsUseCase(repo)
	now := date(2024, time.March, 1)
	uc.now = func() time.Time { return now }

	bill := func(days int, amount int64) *entity.Bill {
		return entity.NewBill(userID, "Bill", dec(amount), entity.BillCategoryOther, now.AddDate(0, 0, days), entity.FrequencyMonthly)
	}
	bills := []*entity.Bill{bill(0, 10), bill(6, 20), bill(7, 30), bill(27, 40), bill(29, 50)}
	repo.EXPECT().FindActiveDueBetween(ctx, userID, now, now.AddDate(0, 0, 30)).Return(bills, nil)

	out, err := uc.Execute(ctx, GetUpcomingBillsInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, 5, out.Summary.TotalBills)
	assert.True(t, out.Summary.TotalAmount.Equal(dec(150)))
	assert.True(t, out.Summary.AverageAmount.Equal(dec(30)))
	require.Len(t, out.WeeklyBreakdown, 4)
	assert.Len(t, out.WeeklyBreakdown[0].Bills, 2)
	assert.True(t, out.WeeklyBreakdown[0].TotalAmount.Equal(dec(30)))
	assert.Len(t, out.WeeklyBreakdown[1].Bills, 1)
	assert.Len(t, out.WeeklyBreakdown[2].Bills, 0)
	assert.Len(t, out.WeeklyBreakdown[3].Bills, 1)
	assert.Equal(t, 4, out.WeeklyBreakdown[3].Week)
}

func TestGetOverdueBillsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newRepo(t)
	uc := NewGetOverdueBillsUseCase(repo)
	now := date(2024, time.March, 20)
	uc.now = func() time.Time { return now }

	withinGrace := entity.NewBill(userID, "Water", dec(50), entity.BillCategoryUtilities, now.AddDate(0, 0, -3), entity.FrequencyMonthly)
	withinGrace.GracePeriod = 5
	withinGrace.LateFee = dec(10)
	pastGrace := entity.NewBill(userID, "Power", dec(100), entity.BillCategoryUtilities, now.AddDate(0, 0, -10), entity.FrequencyMonthly)
	pastGrace.GracePeriod = 5
	pastGrace.LateFee = dec(25)

	repo.EXPECT().FindActiveDueBefore(ctx, userID, now).Return([]*entity.Bill{pastGrace, withinGrace}, nil)

	out, err := uc.Execute(ctx, GetOverdueBillsInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.TotalBills)
	assert.True(t, out.Summary.TotalAmount.Equal(dec(175)))
	assert.True(t, out.Summary.AverageAmount.Equal(decimal.RequireFromString("87.5")))
}

func TestListBillsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newRepo(t)
	uc := NewListBillsUseCase(repo)

	repo.EXPECT().
		FindByFilter(gomock.Any(), gomock.Any(), adapter.ListSort{Field: "dueDate", Order: adapter.SortAsc}, adapter.Pagination{Page: 2, Limit: 100}).
		DoAndReturn(func(_ context.Context, f adapter.BillFilter, _ adapter.ListSort, p adapter.Pagination) (*adapter.BillListResult, error) {
			assert.Equal(t, userID, f.UserID)
			assert.True(t, f.Overdue)
			return &adapter.BillListResult{Bills: []*entity.Bill{}, Page: p.Page, Limit: p.Limit, Total: 0, TotalPages: 1}, nil
		})
	repo.EXPECT().GetStats(gomock.Any(), userID, gomock.Any()).Return(&adapter.BillStats{TotalBills: 3}, nil)

	out, err := uc.Execute(ctx, ListBillsInput{UserID: userID, IsOverdue: true, Page: 2, Limit: 1000, SortOrder: "sideways"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Stats.TotalBills)
	assert.Equal(t, 100, out.Limit)
}
