package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

var goalSortColumns = map[string]string{
	"createdAt":     "created_at",
	"deadline":      "deadline",
	"targetAmount":  "target_amount",
	"currentAmount": "current_amount",
	"title":         "title",
	"priority":      "priority",
}

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

func preloadMilestones(db *gorm.DB) *gorm.DB {
	return db.Preload("Milestones", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

// Create creates a new goal and its milestones.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(model.GoalModelFromEntity(goal)).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// FindByIDForUser retrieves a goal owned by userID with its milestones.
func (r *goalRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Scopes(preloadMilestones).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Update locks the goal row, lets apply mutate the loaded goal and writes it
// back with its milestones in one transaction.
func (r *goalRepository) Update(ctx context.Context, id, userID uuid.UUID, apply func(goal *entity.Goal) error) (*entity.Goal, error) {
	var updated *entity.Goal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var goalModel model.GoalModel
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).
			First(&goalModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrGoalNotFound
			}
			return result.Error
		}
		if err := tx.Where("goal_id = ?", id).Order("position ASC").Find(&goalModel.Milestones).Error; err != nil {
			return err
		}

		goal := goalModel.ToEntity()
		if err := apply(goal); err != nil {
			return err
		}

		saved := model.GoalModelFromEntity(goal)
		if _, err := updateOwned(tx, saved, id, userID); err != nil {
			return fmt.Errorf("update goal: %w", err)
		}
		if err := tx.Where("goal_id = ?", id).Delete(&model.GoalMilestoneModel{}).Error; err != nil {
			return fmt.Errorf("clear goal milestones: %w", err)
		}
		if len(saved.Milestones) > 0 {
			if err := tx.Create(&saved.Milestones).Error; err != nil {
				return fmt.Errorf("save goal milestones: %w", err)
			}
		}

		updated = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a goal owned by userID and its milestones.
func (r *goalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.GoalModel{})
		if result.Error != nil {
			return fmt.Errorf("delete goal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}
		return tx.Where("goal_id = ?", id).Delete(&model.GoalMilestoneModel{}).Error
	})
}

// FindByFilter returns one page of the user's goals matching filter.
func (r *goalRepository) FindByFilter(ctx context.Context, filter adapter.GoalFilter, sort adapter.ListSort, pagination adapter.Pagination) (*adapter.GoalListResult, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count goals: %w", err)
	}

	var models []model.GoalModel
	result := r.filtered(ctx, filter).
		Scopes(preloadMilestones, orderBy(sort, goalSortColumns, "createdAt"), paginate(pagination)).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("list goals: %w", result.Error)
	}

	goals := make([]*entity.Goal, len(models))
	for i := range models {
		goals[i] = models[i].ToEntity()
	}

	return &adapter.GoalListResult{
		Goals:      goals,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

// GetStats aggregates all of the user's goals.
func (r *goalRepository) GetStats(ctx context.Context, userID uuid.UUID) (*adapter.GoalStats, error) {
	var row struct {
		TotalGoals      int64
		ActiveGoals     int64
		CompletedGoals  int64
		PausedGoals     int64
		TotalTarget     decimal.Decimal
		TotalCurrent    decimal.Decimal
		AverageProgress decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Select(`COUNT(*) AS total_goals,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS active_goals,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_goals,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS paused_goals,
			COALESCE(SUM(target_amount), 0) AS total_target,
			COALESCE(SUM(current_amount), 0) AS total_current,
			COALESCE(AVG(current_amount * 100.0 / target_amount), 0) AS average_progress`,
			string(entity.GoalStatusActive), string(entity.GoalStatusCompleted), string(entity.GoalStatusPaused)).
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("goal stats: %w", result.Error)
	}

	return &adapter.GoalStats{
		TotalGoals:      row.TotalGoals,
		ActiveGoals:     row.ActiveGoals,
		CompletedGoals:  row.CompletedGoals,
		PausedGoals:     row.PausedGoals,
		TotalTarget:     money(row.TotalTarget),
		TotalCurrent:    money(row.TotalCurrent),
		AverageProgress: money(row.AverageProgress),
	}, nil
}

// GetSummary builds the overview plus per-category and per-priority breakdowns.
func (r *goalRepository) GetSummary(ctx context.Context, userID uuid.UUID) (*adapter.GoalSummary, error) {
	overview, err := r.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	var categories []struct {
		Category        string
		Count           int64
		TotalTarget     decimal.Decimal
		TotalCurrent    decimal.Decimal
		AverageProgress decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Select(`category, COUNT(*) AS count,
			COALESCE(SUM(target_amount), 0) AS total_target,
			COALESCE(SUM(current_amount), 0) AS total_current,
			COALESCE(AVG(current_amount * 100.0 / target_amount), 0) AS average_progress`).
		Where("user_id = ?", userID).
		Group("category").
		Order("total_target DESC").
		Scan(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("goal category stats: %w", result.Error)
	}

	var priorities []struct {
		Priority    string
		Count       int64
		TotalTarget decimal.Decimal
	}
	result = r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Select("priority, COUNT(*) AS count, COALESCE(SUM(target_amount), 0) AS total_target").
		Where("user_id = ?", userID).
		Group("priority").
		Order("count DESC").
		Scan(&priorities)
	if result.Error != nil {
		return nil, fmt.Errorf("goal priority stats: %w", result.Error)
	}

	summary := &adapter.GoalSummary{
		Overview:   *overview,
		Categories: make([]adapter.GoalCategoryStats, len(categories)),
		Priorities: make([]adapter.GoalPriorityStats, len(priorities)),
	}
	for i, c := range categories {
		summary.Categories[i] = adapter.GoalCategoryStats{
			Category:        entity.GoalCategory(c.Category),
			Count:           c.Count,
			TotalTarget:     money(c.TotalTarget),
			TotalCurrent:    money(c.TotalCurrent),
			AverageProgress: money(c.AverageProgress),
		}
	}
	for i, p := range priorities {
		summary.Priorities[i] = adapter.GoalPriorityStats{
			Priority:    entity.GoalPriority(p.Priority),
			Count:       p.Count,
			TotalTarget: money(p.TotalTarget),
		}
	}
	return summary, nil
}

func (r *goalRepository) filtered(ctx context.Context, filter adapter.GoalFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.GoalModel{}).Scopes(ownedBy(filter.UserID))

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", string(*filter.Priority))
	}
	return query
}
