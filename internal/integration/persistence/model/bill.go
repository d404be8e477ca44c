package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_bills_user_due"`
	Title         string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	DueDate       time.Time       `gorm:"not null;index:idx_bills_user_due"`
	Frequency     string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	IsActive      bool            `gorm:"not null;default:true"`
	IsAutoPaid    bool            `gorm:"not null;default:false"`
	LastPaid      *time.Time
	NextDueDate   *time.Time
	PaymentMethod string          `gorm:"type:varchar(20);not null;default:'bank_transfer'"`
	ReminderDays  int             `gorm:"not null;default:3"`
	GracePeriod   int             `gorm:"not null;default:0"`
	LateFee       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Vendor        string          `gorm:"type:varchar(100)"`
	AccountNumber string          `gorm:"type:varchar(50)"`
	Tags          TagList         `gorm:"column:tags"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Payments []BillPaymentModel `gorm:"foreignKey:BillID;references:ID;constraint:OnDelete:CASCADE"`
	User     *UserModel         `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// BillPaymentModel is one row of a bill's payment history.
type BillPaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BillID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentDate   time.Time       `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Reference     string          `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BillPaymentModel.
func (BillPaymentModel) TableName() string {
	return "bill_payments"
}

// ToEntity converts a BillModel, with any preloaded payments, to a domain Bill.
func (m *BillModel) ToEntity() *entity.Bill {
	history := make([]entity.PaymentRecord, 0, len(m.Payments))
	for _, p := range m.Payments {
		history = append(history, p.ToEntity())
	}

	return &entity.Bill{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Description:    m.Description,
		Amount:         m.Amount,
		Category:       entity.BillCategory(m.Category),
		DueDate:        m.DueDate.UTC(),
		Frequency:      entity.Frequency(m.Frequency),
		IsActive:       m.IsActive,
		IsAutoPaid:     m.IsAutoPaid,
		LastPaid:       utcPtr(m.LastPaid),
		NextDueDate:    utcPtr(m.NextDueDate),
		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		ReminderDays:   m.ReminderDays,
		GracePeriod:    m.GracePeriod,
		LateFee:        m.LateFee,
		Vendor:         m.Vendor,
		AccountNumber:  m.AccountNumber,
		Tags:           tagsToEntity(m.Tags),
		PaymentHistory: history,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToEntity converts a BillPaymentModel to a domain PaymentRecord.
func (m *BillPaymentModel) ToEntity() entity.PaymentRecord {
	return entity.PaymentRecord{
		ID:            m.ID,
		BillID:        m.BillID,
		PaymentDate:   m.PaymentDate.UTC(),
		Amount:        m.Amount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Reference:     m.Reference,
	}
}

// BillModelFromEntity creates a BillModel from a domain Bill. Payment history
// is stored separately through BillPaymentModelFromEntity.
func BillModelFromEntity(b *entity.Bill) *BillModel {
	return &BillModel{
		ID:            b.ID,
		UserID:        b.UserID,
		Title:         b.Title,
		Description:   b.Description,
		Amount:        b.Amount,
		Category:      string(b.Category),
		DueDate:       b.DueDate,
		Frequency:     string(b.Frequency),
		IsActive:      b.IsActive,
		IsAutoPaid:    b.IsAutoPaid,
		LastPaid:      b.LastPaid,
		NextDueDate:   b.NextDueDate,
		PaymentMethod: string(b.PaymentMethod),
		ReminderDays:  b.ReminderDays,
		GracePeriod:   b.GracePeriod,
		LateFee:       b.LateFee,
		Vendor:        b.Vendor,
		AccountNumber: b.AccountNumber,
		Tags:          tagsFromEntity(b.Tags),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// BillPaymentModelFromEntity creates a BillPaymentModel from a PaymentRecord.
func BillPaymentModelFromEntity(p entity.PaymentRecord) *BillPaymentModel {
	return &BillPaymentModel{
		ID:            p.ID,
		BillID:        p.BillID,
		PaymentDate:   p.PaymentDate,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		Reference:     p.Reference,
		CreatedAt:     time.Now().UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
