package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/bill"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for creating a bill.
type CreateBillRequest struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      string           `json:"category"`
	DueDate       *Date            `json:"dueDate"`
	Frequency     string           `json:"frequency"`
	IsAutoPaid    bool             `json:"isAutoPaid"`
	PaymentMethod string           `json:"paymentMethod"`
	ReminderDays  *int             `json:"reminderDays"`
	GracePeriod   int              `json:"gracePeriod"`
	LateFee       *decimal.Decimal `json:"lateFee"`
	Vendor        string           `json:"vendor"`
	AccountNumber string           `json:"accountNumber"`
	Tags          []string         `json:"tags"`
}

// ToInput maps the request onto the use case input.
func (r CreateBillRequest) ToInput() bill.CreateBillInput {
	input := bill.CreateBillInput{
		Title:         r.Title,
		Description:   r.Description,
		Amount:        decimalOrZero(r.Amount),
		Category:      entity.BillCategory(r.Category),
		Frequency:     entity.Frequency(r.Frequency),
		IsAutoPaid:    r.IsAutoPaid,
		PaymentMethod: entity.PaymentMethod(r.PaymentMethod),
		ReminderDays:  r.ReminderDays,
		GracePeriod:   r.GracePeriod,
		LateFee:       decimalOrZero(r.LateFee),
		Vendor:        r.Vendor,
		AccountNumber: r.AccountNumber,
		Tags:          r.Tags,
	}
	if r.DueDate != nil {
		input.DueDate = r.DueDate.Time
	}
	return input
}

// UpdateBillRequest represents the request body for updating a bill.
type UpdateBillRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	DueDate       *Date            `json:"dueDate"`
	Frequency     *string          `json:"frequency"`
	IsActive      *bool            `json:"isActive"`
	IsAutoPaid    *bool            `json:"isAutoPaid"`
	PaymentMethod *string          `json:"paymentMethod"`
	ReminderDays  *int             `json:"reminderDays"`
	GracePeriod   *int             `json:"gracePeriod"`
	LateFee       *decimal.Decimal `json:"lateFee"`
	Vendor        *string          `json:"vendor"`
	AccountNumber *string          `json:"accountNumber"`
	Tags          *[]string        `json:"tags"`
}

// ToInput maps the request onto the use case input.
func (r UpdateBillRequest) ToInput() bill.UpdateBillInput {
	input := bill.UpdateBillInput{
		Title:         r.Title,
		Description:   r.Description,
		Amount:        r.Amount,
		DueDate:       r.DueDate.Ptr(),
		IsActive:      r.IsActive,
		IsAutoPaid:    r.IsAutoPaid,
		ReminderDays:  r.ReminderDays,
		GracePeriod:   r.GracePeriod,
		LateFee:       r.LateFee,
		Vendor:        r.Vendor,
		AccountNumber: r.AccountNumber,
		Tags:          r.Tags,
	}
	if r.Category != nil {
		c := entity.BillCategory(*r.Category)
		input.Category = &c
	}
	if r.Frequency != nil {
		f := entity.Frequency(*r.Frequency)
		input.Frequency = &f
	}
	if r.PaymentMethod != nil {
		m := entity.PaymentMethod(*r.PaymentMethod)
		input.PaymentMethod = &m
	}
	return input
}

// MarkBillPaidRequest represents the optional body of a mark-paid call.
type MarkBillPaidRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod string           `json:"paymentMethod"`
	Reference     string           `json:"reference"`
}

// PaymentRecordResponse represents one payment in a bill's history.
type PaymentRecordResponse struct {
	ID            string    `json:"id"`
	PaymentDate   time.Time `json:"paymentDate"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Reference     string    `json:"reference,omitempty"`
}

func toPaymentRecordResponse(p entity.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:            p.ID.String(),
		PaymentDate:   p.PaymentDate,
		Amount:        Money(p.Amount),
		PaymentMethod: string(p.PaymentMethod),
		Reference:     p.Reference,
	}
}

// BillResponse represents a bill in API responses, including the fields derived at read time.
type BillResponse struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"userId"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Amount         float64                 `json:"amount"`
	Category       string                  `json:"category"`
	DueDate        time.Time               `json:"dueDate"`
	Frequency      string                  `json:"frequency"`
	IsActive       bool                    `json:"isActive"`
	IsAutoPaid     bool                    `json:"isAutoPaid"`
	LastPaid       *time.Time              `json:"lastPaid"`
	NextDueDate    *time.Time              `json:"nextDueDate"`
	PaymentMethod  string                  `json:"paymentMethod"`
	ReminderDays   int                     `json:"reminderDays"`
	GracePeriod    int                     `json:"gracePeriod"`
	LateFee        float64                 `json:"lateFee"`
	Vendor         string                  `json:"vendor"`
	AccountNumber  string                  `json:"accountNumber"`
	Tags           []string                `json:"tags"`
	PaymentHistory []PaymentRecordResponse `json:"paymentHistory"`
	DaysUntilDue   *int                    `json:"daysUntilDue"`
	IsOverdue      bool                    `json:"isOverdue"`
	IsDueSoon      bool                    `json:"isDueSoon"`
	TotalPaid      float64                 `json:"totalPaid"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// ToBillResponse converts a domain Bill entity to a BillResponse DTO, classifying it at now.
func ToBillResponse(b *entity.Bill, now time.Time) BillResponse {
	history := make([]PaymentRecordResponse, 0, len(b.PaymentHistory))
	for _, p := range b.PaymentHistory {
		history = append(history, toPaymentRecordResponse(p))
	}
	return BillResponse{
		ID:             b.ID.String(),
		UserID:         b.UserID.String(),
		Title:          b.Title,
		Description:    b.Description,
		Amount:         Money(b.Amount),
		Category:       string(b.Category),
		DueDate:        b.DueDate,
		Frequency:      string(b.Frequency),
		IsActive:       b.IsActive,
		IsAutoPaid:     b.IsAutoPaid,
		LastPaid:       b.LastPaid,
		NextDueDate:    b.NextDueDate,
		PaymentMethod:  string(b.PaymentMethod),
		ReminderDays:   b.ReminderDays,
		GracePeriod:    b.GracePeriod,
		LateFee:        Money(b.LateFee),
		Vendor:         b.Vendor,
		AccountNumber:  b.AccountNumber,
		Tags:           nonNilTags(b.Tags),
		PaymentHistory: history,
		DaysUntilDue:   b.DaysUntilDue(now),
		IsOverdue:      b.IsOverdue(now),
		IsDueSoon:      b.IsDueSoon(now),
		TotalPaid:      Money(b.TotalPaid()),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toBillResponses(bills []*entity.Bill, now time.Time) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, ToBillResponse(b, now))
	}
	return out
}

// BillEnvelope wraps a single bill.
type BillEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Bill    BillResponse `json:"bill"`
}

// MarkBillPaidResponse returns the updated bill and the payment that was recorded.
type MarkBillPaidResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Bill    BillResponse          `json:"bill"`
	Payment PaymentRecordResponse `json:"payment"`
}

// ToMarkBillPaidResponse converts the mark-paid output to its response DTO.
func ToMarkBillPaidResponse(out *bill.MarkBillPaidOutput, now time.Time) MarkBillPaidResponse {
	return MarkBillPaidResponse{
		Success: true,
		Message: "Bill marked as paid",
		Bill:    ToBillResponse(out.Bill, now),
		Payment: toPaymentRecordResponse(out.Payment),
	}
}

// BillStatsResponse summarises all of a user's bills.
type BillStatsResponse struct {
	TotalBills    int64   `json:"totalBills"`
	ActiveBills   int64   `json:"activeBills"`
	OverdueBills  int64   `json:"overdueBills"`
	TotalAmount   float64 `json:"totalAmount"`
	AverageAmount float64 `json:"averageAmount"`
}

// BillListResponse represents a page of bills.
type BillListResponse struct {
	Success    bool               `json:"success"`
	Bills      []BillResponse     `json:"bills"`
	Pagination PaginationResponse `json:"pagination"`
	Stats      BillStatsResponse  `json:"stats"`
}

// ToBillListResponse converts the list output to its response DTO.
func ToBillListResponse(out *bill.ListBillsOutput) BillListResponse {
	return BillListResponse{
		Success: true,
		Bills:   toBillResponses(out.Bills, out.Now),
		Pagination: PaginationResponse{
			Current: out.Page,
			Pages:   out.TotalPages,
			Total:   out.Total,
			Limit:   out.Limit,
		},
		Stats: BillStatsResponse{
			TotalBills:    out.Stats.TotalBills,
			ActiveBills:   out.Stats.ActiveBills,
			OverdueBills:  out.Stats.OverdueBills,
			TotalAmount:   Money(out.Stats.TotalAmount),
			AverageAmount: Money(out.Stats.AverageAmount),
		},
	}
}

// AmountSummaryResponse totals a set of bills.
type AmountSummaryResponse struct {
	TotalBills    int     `json:"totalBills"`
	TotalAmount   float64 `json:"totalAmount"`
	AverageAmount float64 `json:"averageAmount"`
}

func toAmountSummary(s bill.AmountSummary) AmountSummaryResponse {
	return AmountSummaryResponse{
		TotalBills:    s.TotalBills,
		TotalAmount:   Money(s.TotalAmount),
		AverageAmount: Money(s.AverageAmount),
	}
}

// WeekBucketResponse is one week of the upcoming-bills breakdown.
type WeekBucketResponse struct {
	Week        int            `json:"week"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	Bills       []BillResponse `json:"bills"`
	TotalAmount float64        `json:"totalAmount"`
}

// UpcomingBillsResponse lists bills due in the next 30 days.
type UpcomingBillsResponse struct {
	Success         bool                  `json:"success"`
	Bills           []BillResponse        `json:"bills"`
	Summary         AmountSummaryResponse `json:"summary"`
	WeeklyBreakdown []WeekBucketResponse  `json:"weeklyBreakdown"`
}

// ToUpcomingBillsResponse converts the upcoming-bills output to its response DTO.
func ToUpcomingBillsResponse(out *bill.GetUpcomingBillsOutput) UpcomingBillsResponse {
	weeks := make([]WeekBucketResponse, 0, len(out.WeeklyBreakdown))
	for _, w := range out.WeeklyBreakdown {
		weeks = append(weeks, WeekBucketResponse{
			Week:        w.Week,
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
			Bills:       toBillResponses(w.Bills, out.Now),
			TotalAmount: Money(w.TotalAmount),
		})
	}
	return UpcomingBillsResponse{
		Success:         true,
		Bills:           toBillResponses(out.Bills, out.Now),
		Summary:         toAmountSummary(out.Summary),
		WeeklyBreakdown: weeks,
	}
}

// OverdueBillsResponse lists active bills past their due date.
type OverdueBillsResponse struct {
	Success bool                  `json:"success"`
	Bills   []BillResponse        `json:"bills"`
	Summary AmountSummaryResponse `json:"summary"`
}

// ToOverdueBillsResponse converts the overdue-bills output to its response DTO.
func ToOverdueBillsResponse(out *bill.GetOverdueBillsOutput) OverdueBillsResponse {
	return OverdueBillsResponse{
		Success: true,
		Bills:   toBillResponses(out.Bills, out.Now),
		Summary: toAmountSummary(out.Summary),
	}
}

// BillOverviewResponse is the overview block of the bill statistics report.
type BillOverviewResponse struct {
	TotalBills    int64   `json:"totalBills"`
	ActiveBills   int64   `json:"activeBills"`
	InactiveBills int64   `json:"inactiveBills"`
	OverdueBills  int64   `json:"overdueBills"`
	TotalAmount   float64 `json:"totalAmount"`
	AverageAmount float64 `json:"averageAmount"`
	TotalPaid     float64 `json:"totalPaid"`
}

// BillCategoryStatResponse is one category of the bill statistics report.
type BillCategoryStatResponse struct {
	Category    string  `json:"category"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
	ActiveCount int64   `json:"activeCount"`
}

// BillFrequencyStatResponse is one frequency of the bill statistics report.
type BillFrequencyStatResponse struct {
	Frequency   string  `json:"frequency"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// BillSummaryResponse represents the bill statistics report.
type BillSummaryResponse struct {
	Success        bool                        `json:"success"`
	Overview       BillOverviewResponse        `json:"overview"`
	CategoryStats  []BillCategoryStatResponse  `json:"categoryStats"`
	FrequencyStats []BillFrequencyStatResponse `json:"frequencyStats"`
}

// ToBillSummaryResponse converts the repository summary to its response DTO.
func ToBillSummaryResponse(s *adapter.BillSummary) BillSummaryResponse {
	categories := make([]BillCategoryStatResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, BillCategoryStatResponse{
			Category:    string(c.Category),
			Count:       c.Count,
			TotalAmount: Money(c.TotalAmount),
			ActiveCount: c.ActiveCount,
		})
	}
	frequencies := make([]BillFrequencyStatResponse, 0, len(s.Frequencies))
	for _, f := range s.Frequencies {
		frequencies = append(frequencies, BillFrequencyStatResponse{
			Frequency:   string(f.Frequency),
			Count:       f.Count,
			TotalAmount: Money(f.TotalAmount),
		})
	}
	return BillSummaryResponse{
		Success: true,
		Overview: BillOverviewResponse{
			TotalBills:    s.TotalBills,
			ActiveBills:   s.ActiveBills,
			InactiveBills: s.InactiveBills,
			OverdueBills:  s.OverdueBills,
			TotalAmount:   Money(s.TotalAmount),
			AverageAmount: Money(s.AverageAmount),
			TotalPaid:     Money(s.TotalPaid),
		},
		CategoryStats:  categories,
		FrequencyStats: frequencies,
	}
}
