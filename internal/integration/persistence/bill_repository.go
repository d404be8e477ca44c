package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

var billSortColumns = map[string]string{
	"dueDate":   "due_date",
	"amount":    "amount",
	"title":     "title",
	"createdAt": "created_at",
}

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

func preloadPayments(db *gorm.DB) *gorm.DB {
	return db.Preload("Payments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("payment_date ASC")
	})
}

// Create creates a new bill along with any payment history it already carries.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model.BillModelFromEntity(bill)).Error; err != nil {
			return fmt.Errorf("create bill: %w", err)
		}
		for _, payment := range bill.PaymentHistory {
			if err := tx.Create(model.BillPaymentModelFromEntity(payment)).Error; err != nil {
				return fmt.Errorf("create bill payment: %w", err)
			}
		}
		return nil
	})
}

// FindByIDForUser retrieves a bill owned by userID with its payment history.
func (r *billRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Bill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).
		Scopes(preloadPayments).
		Where("id = ? AND user_id = ?", id, userID).
		First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// Update locks the bill row, lets apply mutate the loaded bill and writes the
// bill's own columns back in one transaction.
func (r *billRepository) Update(ctx context.Context, id, userID uuid.UUID, apply func(bill *entity.Bill) error) (*entity.Bill, error) {
	var updated *entity.Bill

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bill, err := lockBill(tx, id, userID)
		if err != nil {
			return err
		}
		if err := apply(bill); err != nil {
			return err
		}
		if _, err := updateOwned(tx, model.BillModelFromEntity(bill), id, userID); err != nil {
			return fmt.Errorf("update bill: %w", err)
		}

		updated = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a bill owned by userID and its payment history.
func (r *billRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.BillModel{})
		if result.Error != nil {
			return fmt.Errorf("delete bill: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBillNotFound
		}
		return tx.Where("bill_id = ?", id).Delete(&model.BillPaymentModel{}).Error
	})
}

// FindByFilter returns one page of the user's bills matching filter.
func (r *billRepository) FindByFilter(ctx context.Context, filter adapter.BillFilter, sort adapter.ListSort, pagination adapter.Pagination) (*adapter.BillListResult, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count bills: %w", err)
	}

	var models []model.BillModel
	result := r.filtered(ctx, filter).
		Scopes(preloadPayments, orderBy(sort, billSortColumns, "dueDate"), paginate(pagination)).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("list bills: %w", result.Error)
	}

	return &adapter.BillListResult{
		Bills:      billsToEntities(models),
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

type billStatsRow struct {
	TotalBills    int64
	ActiveBills   int64
	OverdueBills  int64
	TotalAmount   decimal.Decimal
	AverageAmount decimal.Decimal
}

// GetStats aggregates all of the user's bills.
func (r *billRepository) GetStats(ctx context.Context, userID uuid.UUID, now time.Time) (*adapter.BillStats, error) {
	row, err := r.stats(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return &adapter.BillStats{
		TotalBills:    row.TotalBills,
		ActiveBills:   row.ActiveBills,
		OverdueBills:  row.OverdueBills,
		TotalAmount:   money(row.TotalAmount),
		AverageAmount: money(row.AverageAmount),
	}, nil
}

func (r *billRepository) stats(ctx context.Context, userID uuid.UUID, now time.Time) (*billStatsRow, error) {
	var row billStatsRow
	result := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Select(`COUNT(*) AS total_bills,
			COALESCE(SUM(CASE WHEN is_active = ? THEN 1 ELSE 0 END), 0) AS active_bills,
			COALESCE(SUM(CASE WHEN is_active = ? AND due_date < ? THEN 1 ELSE 0 END), 0) AS overdue_bills,
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(AVG(amount), 0) AS average_amount`, true, true, now.UTC()).
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("bill stats: %w", result.Error)
	}
	return &row, nil
}

// GetSummary builds the overview plus per-category and per-frequency breakdowns.
func (r *billRepository) GetSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*adapter.BillSummary, error) {
	row, err := r.stats(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	var totalPaid decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.BillPaymentModel{}).
		Select("COALESCE(SUM(bill_payments.amount), 0)").
		Joins("JOIN bills ON bills.id = bill_payments.bill_id").
		Where("bills.user_id = ?", userID).
		Scan(&totalPaid)
	if result.Error != nil {
		return nil, fmt.Errorf("bill payments total: %w", result.Error)
	}

	var categories []struct {
		Category    string
		Count       int64
		TotalAmount decimal.Decimal
		ActiveCount int64
	}
	result = r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Select(`category, COUNT(*) AS count,
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(SUM(CASE WHEN is_active = ? THEN 1 ELSE 0 END), 0) AS active_count`, true).
		Where("user_id = ?", userID).
		Group("category").
		Order("total_amount DESC").
		Scan(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("bill category stats: %w", result.Error)
	}

	var frequencies []struct {
		Frequency   string
		Count       int64
		TotalAmount decimal.Decimal
	}
	result = r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Select("frequency, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Where("user_id = ?", userID).
		Group("frequency").
		Order("count DESC").
		Scan(&frequencies)
	if result.Error != nil {
		return nil, fmt.Errorf("bill frequency stats: %w", result.Error)
	}

	summary := &adapter.BillSummary{
		TotalBills:    row.TotalBills,
		ActiveBills:   row.ActiveBills,
		InactiveBills: row.TotalBills - row.ActiveBills,
		OverdueBills:  row.OverdueBills,
		TotalAmount:   money(row.TotalAmount),
		AverageAmount: money(row.AverageAmount),
		TotalPaid:     money(totalPaid),
		Categories:    make([]adapter.BillCategoryStats, len(categories)),
		Frequencies:   make([]adapter.BillFrequencyStats, len(frequencies)),
	}
	for i, c := range categories {
		summary.Categories[i] = adapter.BillCategoryStats{
			Category:    entity.BillCategory(c.Category),
			Count:       c.Count,
			TotalAmount: money(c.TotalAmount),
			ActiveCount: c.ActiveCount,
		}
	}
	for i, f := range frequencies {
		summary.Frequencies[i] = adapter.BillFrequencyStats{
			Frequency:   entity.Frequency(f.Frequency),
			Count:       f.Count,
			TotalAmount: money(f.TotalAmount),
		}
	}
	return summary, nil
}

// FindActiveDueBetween returns active bills due in [from, to], earliest first.
func (r *billRepository) FindActiveDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Bill, error) {
	var models []model.BillModel
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(userID), preloadPayments).
		Where("is_active = ? AND due_date >= ? AND due_date <= ?", true, from.UTC(), to.UTC()).
		Order("due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("upcoming bills: %w", result.Error)
	}
	return billsToEntities(models), nil
}

// FindActiveDueBefore returns active bills due strictly before the given time.
func (r *billRepository) FindActiveDueBefore(ctx context.Context, userID uuid.UUID, before time.Time) ([]*entity.Bill, error) {
	var models []model.BillModel
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(userID), preloadPayments).
		Where("is_active = ? AND due_date < ?", true, before.UTC()).
		Order("due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("overdue bills: %w", result.Error)
	}
	return billsToEntities(models), nil
}

// MarkPaid locks the bill row, lets pay mutate the loaded bill and writes the
// bill together with the new payment record in one transaction.
func (r *billRepository) MarkPaid(ctx context.Context, id, userID uuid.UUID, pay func(bill *entity.Bill) entity.PaymentRecord) (*entity.Bill, error) {
	var paid *entity.Bill

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bill, err := lockBill(tx, id, userID)
		if err != nil {
			return err
		}
		record := pay(bill)

		if _, err := updateOwned(tx, model.BillModelFromEntity(bill), bill.ID, userID); err != nil {
			return err
		}
		if err := tx.Create(model.BillPaymentModelFromEntity(record)).Error; err != nil {
			return err
		}

		paid = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

// lockBill loads an owned bill with its payment history, holding a row lock
// until tx ends.
func lockBill(tx *gorm.DB, id, userID uuid.UUID) (*entity.Bill, error) {
	var billModel model.BillModel
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	if err := tx.Where("bill_id = ?", id).Order("payment_date ASC").Find(&billModel.Payments).Error; err != nil {
		return nil, err
	}
	return billModel.ToEntity(), nil
}

func (r *billRepository) filtered(ctx context.Context, filter adapter.BillFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.BillModel{}).Scopes(ownedBy(filter.UserID))

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Frequency != nil {
		query = query.Where("frequency = ?", string(*filter.Frequency))
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	now := filter.Now.UTC()
	if filter.Overdue {
		query = query.Where("is_active = ? AND due_date < ?", true, now)
	}
	if filter.DueSoon {
		query = query.Where("is_active = ? AND due_date >= ? AND due_date <= ?", true, now, now.Add(entity.DueSoonWindow))
	}
	return query
}

func billsToEntities(models []model.BillModel) []*entity.Bill {
	bills := make([]*entity.Bill, len(models))
	for i := range models {
		bills[i] = models[i].ToEntity()
	}
	return bills
}
