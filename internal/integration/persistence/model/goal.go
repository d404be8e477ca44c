package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deadline      time.Time       `gorm:"not null"`
	Category      string          `gorm:"type:varchar(20);not null;default:'savings'"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active';index"`
	Priority      string          `gorm:"type:varchar(10);not null;default:'medium'"`
	AutoUpdate    bool            `gorm:"not null;default:false"`
	Tags          TagList         `gorm:"column:tags"`
	CompletedAt   *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	Milestones []GoalMilestoneModel `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE"`
	User       *UserModel           `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// GoalMilestoneModel is one milestone of a goal. Position keeps the caller's order.
type GoalMilestoneModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position     int             `gorm:"not null;default:0"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description  string          `gorm:"type:varchar(200)"`
	Achieved     bool            `gorm:"not null;default:false"`
	AchievedDate *time.Time
}

// TableName returns the table name for the GoalMilestoneModel.
func (GoalMilestoneModel) TableName() string {
	return "goal_milestones"
}

// ToEntity converts a GoalModel, with any preloaded milestones, to a domain Goal.
func (m *GoalModel) ToEntity() *entity.Goal {
	milestones := make([]entity.Milestone, 0, len(m.Milestones))
	for _, ms := range m.Milestones {
		milestones = append(milestones, entity.Milestone{
			ID:           ms.ID,
			GoalID:       ms.GoalID,
			Amount:       ms.Amount,
			Description:  ms.Description,
			Achieved:     ms.Achieved,
			AchievedDate: utcPtr(ms.AchievedDate),
		})
	}

	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline.UTC(),
		Category:      entity.GoalCategory(m.Category),
		Status:        entity.GoalStatus(m.Status),
		Priority:      entity.GoalPriority(m.Priority),
		AutoUpdate:    m.AutoUpdate,
		Tags:          tagsToEntity(m.Tags),
		Milestones:    milestones,
		CompletedAt:   utcPtr(m.CompletedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalModelFromEntity creates a GoalModel, milestones included, from a domain Goal.
func GoalModelFromEntity(g *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            g.ID,
		UserID:        g.UserID,
		Title:         g.Title,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Category:      string(g.Category),
		Status:        string(g.Status),
		Priority:      string(g.Priority),
		AutoUpdate:    g.AutoUpdate,
		Tags:          tagsFromEntity(g.Tags),
		CompletedAt:   g.CompletedAt,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
		Milestones:    GoalMilestoneModelsFromEntity(g),
	}
}

// GoalMilestoneModelsFromEntity converts the goal's milestones, assigning ids and positions.
func GoalMilestoneModelsFromEntity(g *entity.Goal) []GoalMilestoneModel {
	models := make([]GoalMilestoneModel, 0, len(g.Milestones))
	for i, ms := range g.Milestones {
		id := ms.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		models = append(models, GoalMilestoneModel{
			ID:           id,
			GoalID:       g.ID,
			Position:     i,
			Amount:       ms.Amount,
			Description:  ms.Description,
			Achieved:     ms.Achieved,
			AchievedDate: ms.AchievedDate,
		})
	}
	return models
}
