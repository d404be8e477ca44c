package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_date"`
	Title         string          `gorm:"type:varchar(100);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	Date          time.Time       `gorm:"not null;index:idx_expenses_user_date"`
	Description   string          `gorm:"type:varchar(500)"`
	Tags          TagList         `gorm:"column:tags"`
	IsRecurring   bool            `gorm:"default:false"`
	ReceiptURL    string          `gorm:"type:varchar(500)"`
	PaymentMethod string          `gorm:"type:varchar(20);not null;default:'cash'"`
	Location      string          `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Amount:        m.Amount,
		Category:      entity.ExpenseCategory(m.Category),
		Date:          m.Date.UTC(),
		Description:   m.Description,
		Tags:          tagsToEntity(m.Tags),
		IsRecurring:   m.IsRecurring,
		ReceiptURL:    m.ReceiptURL,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Location:      m.Location,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseModelFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseModelFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Title:         e.Title,
		Amount:        e.Amount,
		Category:      string(e.Category),
		Date:          e.Date,
		Description:   e.Description,
		Tags:          tagsFromEntity(e.Tags),
		IsRecurring:   e.IsRecurring,
		ReceiptURL:    e.ReceiptURL,
		PaymentMethod: string(e.PaymentMethod),
		Location:      e.Location,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
