package goal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

var (
	minTarget = decimal.NewFromInt(1)
	maxTarget = decimal.NewFromInt(10_000_000)
)

// MilestoneInput describes one milestone of a goal.
type MilestoneInput struct {
	Amount       decimal.Decimal
	Description  string
	Achieved     bool
	AchievedDate *time.Time
}

func validate(g *entity.Goal) error {
	var v domainerror.Validator

	title := utf8.RuneCountInString(g.Title)
	v.Check(title >= 3 && title <= 100, "title", "title must be between 3 and 100 characters")
	v.Check(utf8.RuneCountInString(g.Description) <= 500, "description", "description cannot exceed 500 characters")
	v.Check(g.TargetAmount.GreaterThanOrEqual(minTarget), "targetAmount", "target amount must be at least 1")
	v.Check(g.TargetAmount.LessThanOrEqual(maxTarget), "targetAmount", "target amount cannot exceed 10,000,000")
	v.Check(!g.CurrentAmount.IsNegative(), "currentAmount", "current amount cannot be negative")
	v.Check(!g.Deadline.IsZero(), "deadline", "deadline is required")
	v.Check(g.Category.IsValid(), "category", "invalid category")
	v.Check(g.Status.IsValid(), "status", "invalid status")
	v.Check(g.Priority.IsValid(), "priority", "invalid priority")
	for _, tag := range g.Tags {
		if utf8.RuneCountInString(tag) > entity.MaxTagLength {
			v.Add("tags", "each tag cannot exceed 30 characters")
			break
		}
	}
	for _, m := range g.Milestones {
		if !m.Amount.IsPositive() {
			v.Add("milestones", "milestone amount must be greater than 0")
			break
		}
		if utf8.RuneCountInString(m.Description) > 200 {
			v.Add("milestones", "milestone description cannot exceed 200 characters")
			break
		}
	}

	return v.Err()
}

// checkRules enforces the business rules that are reported with goal error codes.
func checkRules(g *entity.Goal, checkCurrent, checkDeadline bool, now time.Time) error {
	if checkCurrent && g.CurrentAmount.GreaterThan(g.TargetAmount) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeCurrentExceedsTarget,
			"current amount cannot exceed target amount",
			domainerror.ErrCurrentExceedsTarget,
		)
	}
	if checkDeadline && !g.Deadline.After(now) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeDeadlineInPast,
			"deadline must be in the future",
			domainerror.ErrDeadlineInPast,
		)
	}
	for _, m := range g.Milestones {
		if m.Amount.GreaterThan(g.TargetAmount) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMilestoneExceedsTarget,
				"milestone amount cannot exceed target amount",
				domainerror.ErrMilestoneExceedsTarget,
			)
		}
	}
	return nil
}

func toMilestones(goalID uuid.UUID, inputs []MilestoneInput) []entity.Milestone {
	out := make([]entity.Milestone, 0, len(inputs))
	for _, in := range inputs {
		m := entity.Milestone{
			ID:          uuid.New(),
			GoalID:      goalID,
			Amount:      in.Amount,
			Description: strings.TrimSpace(in.Description),
			Achieved:    in.Achieved,
		}
		if in.AchievedDate != nil {
			d := in.AchievedDate.UTC()
			m.AchievedDate = &d
		}
		out = append(out, m)
	}
	return out
}

func normalize(g *entity.Goal) {
	g.Title = strings.TrimSpace(g.Title)
	g.Description = strings.TrimSpace(g.Description)
	g.Tags = entity.NormalizeTags(g.Tags)
}

func notFound(err error) error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		err,
	)
}
