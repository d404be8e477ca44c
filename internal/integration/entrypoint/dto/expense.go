package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for creating an expense.
type CreateExpenseRequest struct {
	Title         string           `json:"title"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      string           `json:"category"`
	Date          *Date            `json:"date"`
	Description   string           `json:"description"`
	Tags          []string         `json:"tags"`
	IsRecurring   bool             `json:"isRecurring"`
	ReceiptURL    string           `json:"receiptUrl"`
	PaymentMethod string           `json:"paymentMethod"`
	Location      string           `json:"location"`
}

// ToInput maps the request onto the use case input.
func (r CreateExpenseRequest) ToInput() expense.CreateExpenseInput {
	return expense.CreateExpenseInput{
		Title:         r.Title,
		Amount:        decimalOrZero(r.Amount),
		Category:      entity.ExpenseCategory(r.Category),
		Date:          r.Date.Ptr(),
		Description:   r.Description,
		Tags:          r.Tags,
		IsRecurring:   r.IsRecurring,
		ReceiptURL:    r.ReceiptURL,
		PaymentMethod: entity.PaymentMethod(r.PaymentMethod),
		Location:      r.Location,
	}
}

// UpdateExpenseRequest represents the request body for updating an expense.
type UpdateExpenseRequest struct {
	Title         *string          `json:"title"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Date          *Date            `json:"date"`
	Description   *string          `json:"description"`
	Tags          *[]string        `json:"tags"`
	IsRecurring   *bool            `json:"isRecurring"`
	ReceiptURL    *string          `json:"receiptUrl"`
	PaymentMethod *string          `json:"paymentMethod"`
	Location      *string          `json:"location"`
}

// ToInput maps the request onto the use case input.
func (r UpdateExpenseRequest) ToInput() expense.UpdateExpenseInput {
	input := expense.UpdateExpenseInput{
		Title:       r.Title,
		Amount:      r.Amount,
		Date:        r.Date.Ptr(),
		Description: r.Description,
		Tags:        r.Tags,
		IsRecurring: r.IsRecurring,
		ReceiptURL:  r.ReceiptURL,
		Location:    r.Location,
	}
	if r.Category != nil {
		c := entity.ExpenseCategory(*r.Category)
		input.Category = &c
	}
	if r.PaymentMethod != nil {
		m := entity.PaymentMethod(*r.PaymentMethod)
		input.PaymentMethod = &m
	}
	return input
}

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	IsRecurring   bool      `json:"isRecurring"`
	ReceiptURL    string    `json:"receiptUrl"`
	PaymentMethod string    `json:"paymentMethod"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		UserID:        e.UserID.String(),
		Title:         e.Title,
		Amount:        Money(e.Amount),
		Category:      string(e.Category),
		Date:          e.Date,
		Description:   e.Description,
		Tags:          nonNilTags(e.Tags),
		IsRecurring:   e.IsRecurring,
		ReceiptURL:    e.ReceiptURL,
		PaymentMethod: string(e.PaymentMethod),
		Location:      e.Location,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ExpenseEnvelope wraps a single expense.
type ExpenseEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Expense ExpenseResponse `json:"expense"`
}

// ExpenseStatsResponse summarises the filtered expense set.
type ExpenseStatsResponse struct {
	TotalExpenses  float64 `json:"totalExpenses"`
	AverageExpense float64 `json:"averageExpense"`
	MaxExpense     float64 `json:"maxExpense"`
	MinExpense     float64 `json:"minExpense"`
	Count          int64   `json:"count"`
}

// ExpenseListResponse represents a page of expenses.
type ExpenseListResponse struct {
	Success    bool                 `json:"success"`
	Expenses   []ExpenseResponse    `json:"expenses"`
	Pagination PaginationResponse   `json:"pagination"`
	Stats      ExpenseStatsResponse `json:"stats"`
}

// ToExpenseListResponse converts the list output to its response DTO.
func ToExpenseListResponse(out *expense.ListExpensesOutput) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(out.Expenses))
	for _, e := range out.Expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{
		Success:  true,
		Expenses: items,
		Pagination: PaginationResponse{
			Current: out.Page,
			Pages:   out.TotalPages,
			Total:   out.Total,
			Limit:   out.Limit,
		},
		Stats: ExpenseStatsResponse{
			TotalExpenses:  Money(out.Stats.Total),
			AverageExpense: Money(out.Stats.Average),
			MaxExpense:     Money(out.Stats.Max),
			MinExpense:     Money(out.Stats.Min),
			Count:          out.Stats.Count,
		},
	}
}

// PeriodStatResponse is one time bucket of the expense summary.
type PeriodStatResponse struct {
	Period        string  `json:"period"`
	TotalAmount   float64 `json:"totalAmount"`
	Count         int64   `json:"count"`
	AverageAmount float64 `json:"averageAmount"`
}

// CategoryStatResponse is one category of the expense summary.
type CategoryStatResponse struct {
	Category      string  `json:"category"`
	TotalAmount   float64 `json:"totalAmount"`
	Count         int64   `json:"count"`
	AverageAmount float64 `json:"averageAmount"`
}

// ExpenseSummaryResponse represents the expense statistics report.
type ExpenseSummaryResponse struct {
	Success       bool                   `json:"success"`
	Period        string                 `json:"period"`
	PeriodStats   []PeriodStatResponse   `json:"periodStats"`
	CategoryStats []CategoryStatResponse `json:"categoryStats"`
}

// ToExpenseSummaryResponse converts the summary output to its response DTO.
func ToExpenseSummaryResponse(out *expense.GetExpenseSummaryOutput) ExpenseSummaryResponse {
	periods := make([]PeriodStatResponse, 0, len(out.PeriodStats))
	for _, p := range out.PeriodStats {
		periods = append(periods, PeriodStatResponse{
			Period:        p.Period,
			TotalAmount:   Money(p.Total),
			Count:         p.Count,
			AverageAmount: Money(p.Average),
		})
	}
	return ExpenseSummaryResponse{
		Success:       true,
		Period:        string(out.Period),
		PeriodStats:   periods,
		CategoryStats: toCategoryStats(out.CategoryStats),
	}
}

func toCategoryStats(totals []adapter.CategoryTotal) []CategoryStatResponse {
	out := make([]CategoryStatResponse, 0, len(totals))
	for _, c := range totals {
		out = append(out, CategoryStatResponse{
			Category:      c.Category,
			TotalAmount:   Money(c.Total),
			Count:         c.Count,
			AverageAmount: Money(c.Average),
		})
	}
	return out
}

// CategorySuggestionResponse represents a suggested expense category.
type CategorySuggestionResponse struct {
	Success    bool    `json:"success"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ToCategorySuggestionResponse converts a suggestion to its response DTO.
func ToCategorySuggestionResponse(s *adapter.CategorySuggestion) CategorySuggestionResponse {
	return CategorySuggestionResponse{
		Success:    true,
		Category:   string(s.Category),
		Confidence: s.Confidence,
		Reasoning:  s.Reasoning,
	}
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
