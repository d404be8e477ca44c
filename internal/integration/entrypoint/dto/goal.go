package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/goal"
	"github.com/pennywise/backend/internal/domain/entity"
)

// MilestoneRequest describes one milestone in a create or update body.
type MilestoneRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	Description  string           `json:"description"`
	Achieved     bool             `json:"achieved"`
	AchievedDate *Date            `json:"achievedDate"`
}

func toMilestoneInputs(reqs []MilestoneRequest) []goal.MilestoneInput {
	out := make([]goal.MilestoneInput, 0, len(reqs))
	for _, m := range reqs {
		out = append(out, goal.MilestoneInput{
			Amount:       decimalOrZero(m.Amount),
			Description:  m.Description,
			Achieved:     m.Achieved,
			AchievedDate: m.AchievedDate.Ptr(),
		})
	}
	return out
}

// CreateGoalRequest represents the request body for creating a goal.
type CreateGoalRequest struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	TargetAmount  *decimal.Decimal   `json:"targetAmount"`
	CurrentAmount *decimal.Decimal   `json:"currentAmount"`
	Deadline      *Date              `json:"deadline"`
	Category      string             `json:"category"`
	Priority      string             `json:"priority"`
	AutoUpdate    bool               `json:"autoUpdate"`
	Tags          []string           `json:"tags"`
	Milestones    []MilestoneRequest `json:"milestones"`
}

// ToInput maps the request onto the use case input.
func (r CreateGoalRequest) ToInput() goal.CreateGoalInput {
	input := goal.CreateGoalInput{
		Title:         r.Title,
		Description:   r.Description,
		TargetAmount:  decimalOrZero(r.TargetAmount),
		CurrentAmount: decimalOrZero(r.CurrentAmount),
		Category:      entity.GoalCategory(r.Category),
		Priority:      entity.GoalPriority(r.Priority),
		AutoUpdate:    r.AutoUpdate,
		Tags:          r.Tags,
		Milestones:    toMilestoneInputs(r.Milestones),
	}
	if r.Deadline != nil {
		input.Deadline = r.Deadline.Time
	}
	return input
}

// UpdateGoalRequest represents the request body for updating a goal.
type UpdateGoalRequest struct {
	Title         *string             `json:"title"`
	Description   *string             `json:"description"`
	TargetAmount  *decimal.Decimal    `json:"targetAmount"`
	CurrentAmount *decimal.Decimal    `json:"currentAmount"`
	Deadline      *Date               `json:"deadline"`
	Category      *string             `json:"category"`
	Priority      *string             `json:"priority"`
	AutoUpdate    *bool               `json:"autoUpdate"`
	Tags          *[]string           `json:"tags"`
	Milestones    *[]MilestoneRequest `json:"milestones"`
}

// ToInput maps the request onto the use case input.
func (r UpdateGoalRequest) ToInput() goal.UpdateGoalInput {
	input := goal.UpdateGoalInput{
		Title:         r.Title,
		Description:   r.Description,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.Deadline.Ptr(),
		AutoUpdate:    r.AutoUpdate,
		Tags:          r.Tags,
	}
	if r.Category != nil {
		c := entity.GoalCategory(*r.Category)
		input.Category = &c
	}
	if r.Priority != nil {
		p := entity.GoalPriority(*r.Priority)
		input.Priority = &p
	}
	if r.Milestones != nil {
		m := toMilestoneInputs(*r.Milestones)
		input.Milestones = &m
	}
	return input
}

// FundGoalRequest represents the body of add-funds and withdraw-funds.
type FundGoalRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// UpdateGoalStatusRequest represents the body of a status change.
type UpdateGoalStatusRequest struct {
	Status string `json:"status"`
}

// MilestoneResponse represents a milestone in API responses.
type MilestoneResponse struct {
	ID           string     `json:"id"`
	Amount       float64    `json:"amount"`
	Description  string     `json:"description"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate"`
}

// GoalResponse represents a goal in API responses, including the fields derived at read time.
type GoalResponse struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"userId"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	TargetAmount       float64             `json:"targetAmount"`
	CurrentAmount      float64             `json:"currentAmount"`
	Deadline           time.Time           `json:"deadline"`
	Category           string              `json:"category"`
	Status             string              `json:"status"`
	Priority           string              `json:"priority"`
	AutoUpdate         bool                `json:"autoUpdate"`
	Tags               []string            `json:"tags"`
	Milestones         []MilestoneResponse `json:"milestones"`
	CompletedAt        *time.Time          `json:"completedAt"`
	ProgressPercentage int                 `json:"progressPercentage"`
	RemainingAmount    float64             `json:"remainingAmount"`
	DaysRemaining      int                 `json:"daysRemaining"`
	IsOverdue          bool                `json:"isOverdue"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO, deriving progress at now.
func ToGoalResponse(g *entity.Goal, now time.Time) GoalResponse {
	milestones := make([]MilestoneResponse, 0, len(g.Milestones))
	for _, m := range g.Milestones {
		milestones = append(milestones, MilestoneResponse{
			ID:           m.ID.String(),
			Amount:       Money(m.Amount),
			Description:  m.Description,
			Achieved:     m.Achieved,
			AchievedDate: m.AchievedDate,
		})
	}
	return GoalResponse{
		ID:                 g.ID.String(),
		UserID:             g.UserID.String(),
		Title:              g.Title,
		Description:        g.Description,
		TargetAmount:       Money(g.TargetAmount),
		CurrentAmount:      Money(g.CurrentAmount),
		Deadline:           g.Deadline,
		Category:           string(g.Category),
		Status:             string(g.Status),
		Priority:           string(g.Priority),
		AutoUpdate:         g.AutoUpdate,
		Tags:               nonNilTags(g.Tags),
		Milestones:         milestones,
		CompletedAt:        g.CompletedAt,
		ProgressPercentage: g.ProgressPercentage(),
		RemainingAmount:    Money(g.RemainingAmount()),
		DaysRemaining:      g.DaysRemaining(now),
		IsOverdue:          g.IsOverdue(now),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

// GoalEnvelope wraps a single goal.
type GoalEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Goal    GoalResponse `json:"goal"`
}

// GoalStatsResponse summarises all of a user's goals.
type GoalStatsResponse struct {
	TotalGoals      int64   `json:"totalGoals"`
	ActiveGoals     int64   `json:"activeGoals"`
	CompletedGoals  int64   `json:"completedGoals"`
	TotalTarget     float64 `json:"totalTarget"`
	TotalCurrent    float64 `json:"totalCurrent"`
	AverageProgress float64 `json:"averageProgress"`
}

// GoalListResponse represents a page of goals.
type GoalListResponse struct {
	Success    bool               `json:"success"`
	Goals      []GoalResponse     `json:"goals"`
	Pagination PaginationResponse `json:"pagination"`
	Stats      GoalStatsResponse  `json:"stats"`
}

// ToGoalListResponse converts the list output to its response DTO.
func ToGoalListResponse(out *goal.ListGoalsOutput, now time.Time) GoalListResponse {
	goals := make([]GoalResponse, 0, len(out.Goals))
	for _, g := range out.Goals {
		goals = append(goals, ToGoalResponse(g, now))
	}
	return GoalListResponse{
		Success: true,
		Goals:   goals,
		Pagination: PaginationResponse{
			Current: out.Page,
			Pages:   out.TotalPages,
			Total:   out.Total,
			Limit:   out.Limit,
		},
		Stats: GoalStatsResponse{
			TotalGoals:      out.Stats.TotalGoals,
			ActiveGoals:     out.Stats.ActiveGoals,
			CompletedGoals:  out.Stats.CompletedGoals,
			TotalTarget:     Money(out.Stats.TotalTarget),
			TotalCurrent:    Money(out.Stats.TotalCurrent),
			AverageProgress: Money(out.Stats.AverageProgress),
		},
	}
}

// GoalOverviewResponse is the overview block of the goal statistics report.
type GoalOverviewResponse struct {
	TotalGoals      int64   `json:"totalGoals"`
	ActiveGoals     int64   `json:"activeGoals"`
	CompletedGoals  int64   `json:"completedGoals"`
	PausedGoals     int64   `json:"pausedGoals"`
	TotalTarget     float64 `json:"totalTarget"`
	TotalCurrent    float64 `json:"totalCurrent"`
	AverageProgress float64 `json:"averageProgress"`
}

// GoalCategoryStatResponse is one category of the goal statistics report.
type GoalCategoryStatResponse struct {
	Category        string  `json:"category"`
	Count           int64   `json:"count"`
	TotalTarget     float64 `json:"totalTarget"`
	TotalCurrent    float64 `json:"totalCurrent"`
	AverageProgress float64 `json:"averageProgress"`
}

// GoalPriorityStatResponse is one priority of the goal statistics report.
type GoalPriorityStatResponse struct {
	Priority    string  `json:"priority"`
	Count       int64   `json:"count"`
	TotalTarget float64 `json:"totalTarget"`
}

// GoalSummaryResponse represents the goal statistics report.
type GoalSummaryResponse struct {
	Success       bool                       `json:"success"`
	Overview      GoalOverviewResponse       `json:"overview"`
	CategoryStats []GoalCategoryStatResponse `json:"categoryStats"`
	PriorityStats []GoalPriorityStatResponse `json:"priorityStats"`
}

// ToGoalSummaryResponse converts the repository summary to its response DTO.
func ToGoalSummaryResponse(s *adapter.GoalSummary) GoalSummaryResponse {
	categories := make([]GoalCategoryStatResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, GoalCategoryStatResponse{
			Category:        string(c.Category),
			Count:           c.Count,
			TotalTarget:     Money(c.TotalTarget),
			TotalCurrent:    Money(c.TotalCurrent),
			AverageProgress: Money(c.AverageProgress),
		})
	}
	priorities := make([]GoalPriorityStatResponse, 0, len(s.Priorities))
	for _, p := range s.Priorities {
		priorities = append(priorities, GoalPriorityStatResponse{
			Priority:    string(p.Priority),
			Count:       p.Count,
			TotalTarget: Money(p.TotalTarget),
		})
	}
	o := s.Overview
	return GoalSummaryResponse{
		Success: true,
		Overview: GoalOverviewResponse{
			TotalGoals:      o.TotalGoals,
			ActiveGoals:     o.ActiveGoals,
			CompletedGoals:  o.CompletedGoals,
			PausedGoals:     o.PausedGoals,
			TotalTarget:     Money(o.TotalTarget),
			TotalCurrent:    Money(o.TotalCurrent),
			AverageProgress: Money(o.AverageProgress),
		},
		CategoryStats: categories,
		PriorityStats: priorities,
	}
}
