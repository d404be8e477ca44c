package persistence

import (
	"context"
	"fmt"
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

func seedGoal(t *testing.T, repo adapter.GoalRepository, userID uuid.UUID, target, current int64) *entity.Goal {
	t.Helper()

	goal := entity.NewGoal(userID, "Emergency fund", decimal.NewFromInt(target), time.Now().AddDate(1, 0, 0))
	goal.CurrentAmount = decimal.NewFromInt(current)
	require.NoError(t, repo.Create(context.Background(), goal))
	return goal
}

func deposit(amount int64, now time.Time) func(*entity.Goal) error {
	return func(g *entity.Goal) error {
		g.AddFunds(decimal.NewFromInt(amount), now)
		return nil
	}
}

func withdrawal(amount int64, now time.Time) func(*entity.Goal) error {
	return func(g *entity.Goal) error {
		if !g.WithdrawFunds(decimal.NewFromInt(amount), now) {
			return domainerror.ErrInsufficientFunds
		}
		return nil
	}
}

func TestGoalRepository_Update_Funding(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")

	t.Run("crossing the target completes the goal once", func(t *testing.T) {
		goal := seedGoal(t, repo, owner.ID, 10000, 9000)
		first := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

		updated, err := repo.Update(ctx, goal.ID, owner.ID, deposit(1500, first))
		require.NoError(t, err)
		assert.True(t, updated.CurrentAmount.Equal(decimal.NewFromInt(10500)))
		assert.Equal(t, entity.GoalStatusCompleted, updated.Status)

		_, err = repo.Update(ctx, goal.ID, owner.ID, deposit(1, first.Add(time.Hour)))
		require.NoError(t, err)
		stored, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.CompletedAt)
		assert.True(t, stored.CompletedAt.Equal(first))
		assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(10501)))
	})

	t.Run("rejected withdrawal writes nothing", func(t *testing.T) {
		goal := seedGoal(t, repo, owner.ID, 1000, 100)

		_, err := repo.Update(ctx, goal.ID, owner.ID, withdrawal(101, time.Now()))
		assert.ErrorIs(t, err, domainerror.ErrInsufficientFunds)

		stored, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("completed goal below target reopens", func(t *testing.T) {
		goal := seedGoal(t, repo, owner.ID, 100, 0)
		_, err := repo.Update(ctx, goal.ID, owner.ID, deposit(100, time.Now()))
		require.NoError(t, err)

		_, err = repo.Update(ctx, goal.ID, owner.ID, withdrawal(1, time.Now()))
		require.NoError(t, err)

		stored, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusActive, stored.Status)
		assert.Nil(t, stored.CompletedAt)
		assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(99)))
	})

	t.Run("manual completion keeps the saved amount", func(t *testing.T) {
		goal := seedGoal(t, repo, owner.ID, 1000, 250)

		_, err := repo.Update(ctx, goal.ID, owner.ID, func(g *entity.Goal) error {
			g.SetStatus(entity.GoalStatusCompleted, time.Now())
			return nil
		})
		require.NoError(t, err)

		stored, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.GoalStatusCompleted, stored.Status)
		assert.NotNil(t, stored.CompletedAt)
		assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(250)))
	})

	t.Run("unknown or foreign goal", func(t *testing.T) {
		_, err := repo.Update(ctx, uuid.New(), owner.ID, deposit(1, time.Now()))
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

		goal := seedGoal(t, repo, owner.ID, 100, 50)
		_, err = repo.Update(ctx, goal.ID, intruder.ID, withdrawal(1, time.Now()))
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	})
}

func TestGoalRepository_Update_Concurrent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	owner := createTestUser(t, db, "owner")
	goal := seedGoal(t, repo, owner.ID, 100000, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, goal.ID, owner.ID, deposit(25, time.Now()))
			assert.NoError(t, err)
		}()
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, goal.ID, owner.ID, func(g *entity.Goal) error {
				g.Title = fmt.Sprintf("Emergency fund v%d", i)
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(250)), "got %s", stored.CurrentAmount)
	assert.Equal(t, entity.GoalStatusActive, stored.Status)
}

func TestGoalRepository_MilestonesAndStats(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	owner := createTestUser(t, db, "owner")

	goal := entity.NewGoal(owner.ID, "Vacation", decimal.NewFromInt(2000), time.Now().AddDate(0, 6, 0))
	goal.Category = entity.GoalCategoryTravel
	goal.CurrentAmount = decimal.NewFromInt(500)
	goal.Milestones = []entity.Milestone{
		{Amount: decimal.NewFromInt(500), Description: "Flights"},
		{Amount: decimal.NewFromInt(1500), Description: "Hotel"},
	}
	require.NoError(t, repo.Create(ctx, goal))
	seedGoal(t, repo, owner.ID, 1000, 1000)

	stored, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, stored.Milestones, 2)
	assert.Equal(t, "Flights", stored.Milestones[0].Description)

	_, err = repo.Update(ctx, goal.ID, owner.ID, func(g *entity.Goal) error {
		g.Milestones = g.Milestones[1:]
		return nil
	})
	require.NoError(t, err)
	reloaded, err := repo.FindByIDForUser(ctx, goal.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Milestones, 1)
	assert.Equal(t, "Hotel", reloaded.Milestones[0].Description)

	stats, err := repo.GetStats(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalGoals)
	assert.EqualValues(t, 2, stats.ActiveGoals)
	assert.True(t, stats.TotalTarget.Equal(decimal.NewFromInt(3000)))
	assert.True(t, stats.TotalCurrent.Equal(decimal.NewFromInt(1500)))
	assert.True(t, stats.AverageProgress.Equal(decimal.NewFromFloat(62.5)))

	summary, err := repo.GetSummary(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, entity.GoalCategoryTravel, summary.Categories[0].Category)
	require.Len(t, summary.Priorities, 1)
	assert.EqualValues(t, 2, summary.Priorities[0].Count)

	list, err := repo.FindByFilter(ctx, adapter.GoalFilter{UserID: owner.ID}, adapter.ListSort{Field: "targetAmount", Order: adapter.SortDesc}, adapter.NewPagination(1, 1))
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)
	assert.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Goals, 1)
	assert.Equal(t, "Vacation", list.Goals[0].Title)
}
