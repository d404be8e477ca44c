package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCategory is the closed set of goal categories.
type GoalCategory string

const (
	GoalCategorySavings    GoalCategory = "savings"
	GoalCategoryInvestment GoalCategory = "investment"
	GoalCategoryPurchase   GoalCategory = "purchase"
	GoalCategoryEmergency  GoalCategory = "emergency"
	GoalCategoryEducation  GoalCategory = "education"
	GoalCategoryTravel     GoalCategory = "travel"
	GoalCategoryRetirement GoalCategory = "retirement"
	GoalCategoryOther      GoalCategory = "other"
)

// GoalCategories lists every valid goal category.
var GoalCategories = []GoalCategory{
	GoalCategorySavings,
	GoalCategoryInvestment,
	GoalCategoryPurchase,
	GoalCategoryEmergency,
	GoalCategoryEducation,
	GoalCategoryTravel,
	GoalCategoryRetirement,
	GoalCategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c GoalCategory) IsValid() bool {
	for _, known := range GoalCategories {
		if c == known {
			return true
		}
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// IsValid reports whether s is one of the four states.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	}
	return false
}

// GoalPriority ranks goals against each other.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
	GoalPriorityUrgent GoalPriority = "urgent"
)

// IsValid reports whether p is one of the known priorities.
func (p GoalPriority) IsValid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh, GoalPriorityUrgent:
		return true
	}
	return false
}

// Milestone is a tracked sub-target of a goal. Milestones do not drive status.
type Milestone struct {
	ID           uuid.UUID
	GoalID       uuid.UUID
	Amount       decimal.Decimal
	Description  string
	Achieved     bool
	AchievedDate *time.Time
}

// Goal represents a savings target.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Category      GoalCategory
	Status        GoalStatus
	Priority      GoalPriority
	AutoUpdate    bool
	Tags          []string
	Milestones    []Milestone
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates an active goal with no funds.
func NewGoal(userID uuid.UUID, title string, targetAmount decimal.Decimal, deadline time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline.UTC(),
		Category:      GoalCategorySavings,
		Status:        GoalStatusActive,
		Priority:      GoalPriorityMedium,
		Tags:          []string{},
		Milestones:    []Milestone{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProgressPercentage returns round(current/target*100).
func (g *Goal) ProgressPercentage() int {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0).Float64()
	return int(pct)
}

// RemainingAmount returns target minus current. It is negative when overfunded.
func (g *Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// DaysRemaining returns ceil((deadline-now)/1 day).
func (g *Goal) DaysRemaining(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

// IsOverdue is true when the deadline passed before the goal was completed.
func (g *Goal) IsOverdue(now time.Time) bool {
	return now.After(g.Deadline) && g.Status != GoalStatusCompleted
}

// AddFunds increases the current amount and completes the goal once the
// target is reached. completedAt is only ever set the first time.
func (g *Goal) AddFunds(amount decimal.Decimal, now time.Time) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.complete(now)
	}
	g.UpdatedAt = now.UTC()
}

// WithdrawFunds decreases the current amount. It reports false, leaving the
// goal untouched, when amount exceeds the current amount. A completed goal
// that falls below its target goes back to active.
func (g *Goal) WithdrawFunds(amount decimal.Decimal, now time.Time) bool {
	if amount.GreaterThan(g.CurrentAmount) {
		return false
	}
	g.CurrentAmount = g.CurrentAmount.Sub(amount)
	if g.Status == GoalStatusCompleted && g.CurrentAmount.LessThan(g.TargetAmount) {
		g.Status = GoalStatusActive
		g.CompletedAt = nil
	}
	g.UpdatedAt = now.UTC()
	return true
}

// SetStatus applies a manual status change. Completing stamps completedAt
// without touching the current amount; leaving completed clears it.
func (g *Goal) SetStatus(status GoalStatus, now time.Time) {
	if status == GoalStatusCompleted {
		g.complete(now)
	} else {
		g.Status = status
		g.CompletedAt = nil
	}
	g.UpdatedAt = now.UTC()
}

func (g *Goal) complete(now time.Time) {
	g.Status = GoalStatusCompleted
	if g.CompletedAt == nil {
		t := now.UTC()
		g.CompletedAt = &t
	}
}
