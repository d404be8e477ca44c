package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

var expenseSortColumns = map[string]string{
	"date":      "date",
	"amount":    "amount",
	"title":     "title",
	"category":  "category",
	"createdAt": "created_at",
}

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	if err := r.db.WithContext(ctx).Create(model.ExpenseModelFromEntity(expense)).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// FindByIDForUser retrieves an expense owned by userID.
func (r *expenseRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// Update overwrites an expense owned by expense.UserID.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	rows, err := updateOwned(r.db.WithContext(ctx), model.ExpenseModelFromEntity(expense), expense.ID, expense.UserID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if rows == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense owned by userID.
func (r *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return fmt.Errorf("delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// FindByFilter returns one page of the user's expenses matching filter.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, sort adapter.ListSort, pagination adapter.Pagination) (*adapter.ExpenseListResult, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count expenses: %w", err)
	}

	var models []model.ExpenseModel
	result := r.filtered(ctx, filter).
		Scopes(orderBy(sort, expenseSortColumns, "date"), paginate(pagination)).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("list expenses: %w", result.Error)
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}

	return &adapter.ExpenseListResult{
		Expenses:   expenses,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

// GetStats aggregates every expense matching filter, ignoring pagination.
func (r *expenseRepository) GetStats(ctx context.Context, filter adapter.ExpenseFilter) (*adapter.ExpenseStats, error) {
	var row struct {
		Total   decimal.Decimal
		Average decimal.Decimal
		Maximum decimal.Decimal
		Minimum decimal.Decimal
		Count   int64
	}

	result := r.filtered(ctx, filter).
		Select(`COALESCE(SUM(amount), 0) AS total,
			COALESCE(AVG(amount), 0) AS average,
			COALESCE(MAX(amount), 0) AS maximum,
			COALESCE(MIN(amount), 0) AS minimum,
			COUNT(*) AS count`).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("expense stats: %w", result.Error)
	}

	return &adapter.ExpenseStats{
		Total:   money(row.Total),
		Average: money(row.Average),
		Max:     money(row.Maximum),
		Min:     money(row.Minimum),
		Count:   row.Count,
	}, nil
}

// SumByCategory totals the user's expenses per category, largest first.
func (r *expenseRepository) SumByCategory(ctx context.Context, userID uuid.UUID) ([]adapter.CategoryTotal, error) {
	var rows []struct {
		Category string
		Total    decimal.Decimal
		Count    int64
		Average  decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count, COALESCE(AVG(amount), 0) AS average").
		Where("user_id = ?", userID).
		Group("category").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("expense category totals: %w", result.Error)
	}

	totals := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.CategoryTotal{
			Category: row.Category,
			Total:    money(row.Total),
			Count:    row.Count,
			Average:  money(row.Average),
		}
	}
	return totals, nil
}

// SumByPeriod totals the user's expenses per period bucket, oldest first.
func (r *expenseRepository) SumByPeriod(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod) ([]adapter.PeriodTotal, error) {
	var rows []struct {
		Period  string
		Total   decimal.Decimal
		Count   int64
		Average decimal.Decimal
	}

	key := periodKey(r.db.Dialector.Name(), period)
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select(key + " AS period, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count, COALESCE(AVG(amount), 0) AS average").
		Where("user_id = ?", userID).
		Group("period").
		Order("period ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("expense period totals: %w", result.Error)
	}

	totals := make([]adapter.PeriodTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.PeriodTotal{
			Period:  row.Period,
			Total:   money(row.Total),
			Count:   row.Count,
			Average: money(row.Average),
		}
	}
	return totals, nil
}

func (r *expenseRepository) filtered(ctx context.Context, filter adapter.ExpenseFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Scopes(ownedBy(filter.UserID))

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", endOfDay(*filter.EndDate))
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	return query.Scopes(withAnyTag(filter.Tags))
}

// endOfDay widens a date-only bound so the whole day is included.
func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
