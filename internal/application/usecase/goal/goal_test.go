package goal

import (
	"context"
	"errors"
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

func newRepo(t *testing.T) *adapter.MockGoalRepository {
	return adapter.NewMockGoalRepository(gomock.NewController(t))
}

func nextYear() time.Time {
	return time.Now().UTC().AddDate(1, 0, 0)
}

// expectUpdate runs the use case's change against stored, as the repository
// does inside its locked transaction.
func expectUpdate(ctx context.Context, repo *adapter.MockGoalRepository, stored *entity.Goal) *gomock.Call {
	return repo.EXPECT().
		Update(ctx, stored.ID, stored.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, apply func(*entity.Goal) error) (*entity.Goal, error) {
			if err := apply(stored); err != nil {
				return nil, err
			}
			return stored, nil
		})
}

func assertGoalCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	require.True(t, errors.As(err, &goalErr), "expected GoalError, got %v", err)
	assert.Equal(t, code, goalErr.Code)
}

func TestCreateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies defaults", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewCreateGoalUseCase(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		out, err := uc.Execute(ctx, CreateGoalInput{
			UserID: userID, Title: "  Emergency fund ", TargetAmount: dec(10000), Deadline: nextYear(),
			Tags: []string{"safety", "safety", " "},
			Milestones: []MilestoneInput{
				{Amount: dec(2500), Description: "First quarter"},
			},
		})

		require.NoError(t, err)
		g := out.Goal
		assert.Equal(t, "Emergency fund", g.Title)
		assert.Equal(t, entity.GoalCategorySavings, g.Category)
		assert.Equal(t, entity.GoalPriorityMedium, g.Priority)
		assert.Equal(t, entity.GoalStatusActive, g.Status)
		assert.Equal(t, []string{"safety"}, g.Tags)
		require.Len(t, g.Milestones, 1)
		assert.Equal(t, g.ID, g.Milestones[0].GoalID)
		assert.Nil(t, g.CompletedAt)
	})

	t.Run("fully funded goal starts completed", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewCreateGoalUseCase(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		out, err := uc.Execute(ctx, CreateGoalInput{
			UserID: userID, Title: "Laptop", TargetAmount: dec(1500), CurrentAmount: dec(1500), Deadline: nextYear(),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Status)
		assert.NotNil(t, out.Goal.CompletedAt)
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newRepo(t))

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID: userID, Title: "ab", TargetAmount: decimal.Zero, CurrentAmount: dec(-1),
			Deadline: nextYear(), Category: "lottery",
		})

		var vErr *domainerror.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.ElementsMatch(t, []string{"title", "targetAmount", "currentAmount", "category"}, vErr.Fields())
	})

	t.Run("business rules", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newRepo(t))

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID: userID, Title: "Car", TargetAmount: dec(100), CurrentAmount: dec(150), Deadline: nextYear(),
		})
		assertGoalCode(t, err, domainerror.ErrCodeCurrentExceedsTarget)

		_, err = uc.Execute(ctx, CreateGoalInput{
			UserID: userID, Title: "Car", TargetAmount: dec(100), Deadline: time.Now().UTC().Add(-time.Hour),
		})
		assertGoalCode(t, err, domainerror.ErrCodeDeadlineInPast)
		assert.ErrorIs(t, err, domainerror.ErrDeadlineInPast)

		_, err = uc.Execute(ctx, CreateGoalInput{
			UserID: userID, Title: "Car", TargetAmount: dec(100), Deadline: nextYear(),
			Milestones: []MilestoneInput{{Amount: dec(101)}},
		})
		assertGoalCode(t, err, domainerror.ErrCodeMilestoneExceedsTarget)
	})
}

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	existing := func() *entity.Goal {
		g := entity.NewGoal(userID, "Vacation", dec(3000), time.Now().UTC().AddDate(0, 6, 0))
		g.CurrentAmount = dec(500)
		return g
	}

	t.Run("replaces milestones and leaves other fields", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalUseCase(repo)
		g := existing()
		g.Milestones = []entity.Milestone{{ID: uuid.New(), GoalID: g.ID, Amount: dec(1000)}}
		expectUpdate(ctx, repo, g)

		title := "Summer vacation"
		milestones := []MilestoneInput{{Amount: dec(1500), Description: "Flights"}, {Amount: dec(3000)}}
		out, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, UserID: userID, Title: &title, Milestones: &milestones})

		require.NoError(t, err)
		assert.Equal(t, "Summer vacation", out.Goal.Title)
		assert.True(t, out.Goal.TargetAmount.Equal(dec(3000)))
		require.Len(t, out.Goal.Milestones, 2)
		assert.Equal(t, "Flights", out.Goal.Milestones[0].Description)
	})

	t.Run("title edit keeps the locked row's funding state", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalUseCase(repo)
		g := existing()
		// A deposit committed after the client last read the goal.
		g.AddFunds(dec(2500), time.Now())
		expectUpdate(ctx, repo, g)

		title := "Beach trip"
		out, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, UserID: userID, Title: &title})

		require.NoError(t, err)
		assert.True(t, out.Goal.CurrentAmount.Equal(dec(3000)))
		assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Status)
		assert.NotNil(t, out.Goal.CompletedAt)
	})

	t.Run("past deadline on record is not rechecked", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalUseCase(repo)
		g := existing()
		g.Deadline = time.Now().UTC().AddDate(0, 0, -3)
		expectUpdate(ctx, repo, g)

		priority := entity.GoalPriorityHigh
		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, UserID: userID, Priority: &priority})

		require.NoError(t, err)
	})

	t.Run("current amount above target is rejected", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalUseCase(repo)
		g := existing()
		expectUpdate(ctx, repo, g)

		current := dec(3500)
		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, UserID: userID, CurrentAmount: &current})

		assertGoalCode(t, err, domainerror.ErrCodeCurrentExceedsTarget)
	})

	t.Run("invalid fields are reported as validation errors", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalUseCase(repo)
		g := existing()
		expectUpdate(ctx, repo, g)

		title := "ab"
		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, UserID: userID, Title: &title})

		var vErr *domainerror.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"title"}, vErr.Fields())
	})

	t.Run("goal of another user", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalUseCase(repo)
		id := uuid.New()
		repo.EXPECT().Update(ctx, id, userID, gomock.Any()).Return(nil, domainerror.ErrGoalNotFound)

		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: id, UserID: userID})

		assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestFundGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	stored := func(target, current int64) *entity.Goal {
		g := entity.NewGoal(userID, "Bike", dec(target), nextYear())
		g.CurrentAmount = dec(current)
		return g
	}

	t.Run("add funds rejects non-positive amounts", func(t *testing.T) {
		uc := NewAddFundsUseCase(newRepo(t))

		_, err := uc.Execute(ctx, FundGoalInput{GoalID: uuid.New(), UserID: userID, Amount: decimal.Zero})

		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)
	})

	t.Run("reaching the target completes the goal", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewAddFundsUseCase(repo)
		g := stored(800, 500)
		expectUpdate(ctx, repo, g)

		out, err := uc.Execute(ctx, FundGoalInput{GoalID: g.ID, UserID: userID, Amount: dec(300)})

		require.NoError(t, err)
		assert.True(t, out.Goal.CurrentAmount.Equal(dec(800)))
		assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Status)
		assert.NotNil(t, out.Goal.CompletedAt)
	})

	t.Run("withdraw more than held", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewWithdrawFundsUseCase(repo)
		g := stored(800, 40)
		expectUpdate(ctx, repo, g)

		_, err := uc.Execute(ctx, FundGoalInput{GoalID: g.ID, UserID: userID, Amount: dec(50)})

		assertGoalCode(t, err, domainerror.ErrCodeInsufficientFunds)
		assert.True(t, g.CurrentAmount.Equal(dec(40)))
	})

	t.Run("withdraw reopens a completed goal", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewWithdrawFundsUseCase(repo)
		g := stored(800, 0)
		g.AddFunds(dec(800), time.Now())
		expectUpdate(ctx, repo, g)

		out, err := uc.Execute(ctx, FundGoalInput{GoalID: g.ID, UserID: userID, Amount: dec(5)})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusActive, out.Goal.Status)
		assert.Nil(t, out.Goal.CompletedAt)
	})

	t.Run("withdraw from missing goal", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewWithdrawFundsUseCase(repo)
		goalID := uuid.New()
		repo.EXPECT().Update(ctx, goalID, userID, gomock.Any()).Return(nil, domainerror.ErrGoalNotFound)

		_, err := uc.Execute(ctx, FundGoalInput{GoalID: goalID, UserID: userID, Amount: dec(5)})

		assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestUpdateGoalStatusUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("invalid status", func(t *testing.T) {
		uc := NewUpdateGoalStatusUseCase(newRepo(t))

		_, err := uc.Execute(ctx, UpdateGoalStatusInput{GoalID: uuid.New(), UserID: userID, Status: "archived"})

		assert.ErrorIs(t, err, domainerror.ErrValidationFailed)
	})

	t.Run("manual completion keeps the saved amount", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalStatusUseCase(repo)
		g := entity.NewGoal(userID, "Bike", dec(800), nextYear())
		g.CurrentAmount = dec(200)
		expectUpdate(ctx, repo, g)

		out, err := uc.Execute(ctx, UpdateGoalStatusInput{GoalID: g.ID, UserID: userID, Status: entity.GoalStatusCompleted})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Status)
		assert.NotNil(t, out.Goal.CompletedAt)
		assert.True(t, out.Goal.CurrentAmount.Equal(dec(200)))
	})

	t.Run("pauses the goal", func(t *testing.T) {
		repo := newRepo(t)
		uc := NewUpdateGoalStatusUseCase(repo)
		g := entity.NewGoal(userID, "Bike", dec(800), nextYear())
		expectUpdate(ctx, repo, g)

		out, err := uc.Execute(ctx, UpdateGoalStatusInput{GoalID: g.ID, UserID: userID, Status: entity.GoalStatusPaused})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusPaused, out.Goal.Status)
	})
}

func TestListGoalsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newRepo(t)
	uc := NewListGoalsUseCase(repo)

	repo.EXPECT().
		FindByFilter(gomock.Any(), gomock.Any(), adapter.ListSort{Field: "createdAt", Order: adapter.SortDesc}, adapter.NewPagination(0, 500)).
		DoAndReturn(func(_ context.Context, f adapter.GoalFilter, _ adapter.ListSort, p adapter.Pagination) (*adapter.GoalListResult, error) {
			assert.Equal(t, userID, f.UserID)
			return &adapter.GoalListResult{Goals: []*entity.Goal{}, Total: 0, Page: p.Page, Limit: p.Limit}, nil
		})
	repo.EXPECT().GetStats(gomock.Any(), userID).Return(&adapter.GoalStats{TotalGoals: 4, ActiveGoals: 2}, nil)

	out, err := uc.Execute(ctx, ListGoalsInput{UserID: userID, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 100, out.Limit)
	assert.Equal(t, int64(4), out.Stats.TotalGoals)
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := NewDeleteGoalUseCase(repo)
	userID, goalID := uuid.New(), uuid.New()
	repo.EXPECT().Delete(ctx, goalID, userID).Return(domainerror.ErrGoalNotFound)

	err := uc.Execute(ctx, DeleteGoalInput{GoalID: goalID, UserID: userID})

	assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
}
