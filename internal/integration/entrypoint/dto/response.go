package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// FieldErrorResponse is one entry of the errors list in a validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Code    string               `json:"code,omitempty"`
	Errors  []FieldErrorResponse `json:"errors,omitempty"`
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Code: code}
}

// NewValidationErrorResponse lists every failing field of err.
func NewValidationErrorResponse(err *domainerror.ValidationError) ErrorResponse {
	fields := make([]FieldErrorResponse, 0, len(err.Errors))
	for _, fe := range err.Errors {
		fields = append(fields, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return ErrorResponse{
		Success: false,
		Message: "Validation failed",
		Code:    string(err.Code),
		Errors:  fields,
	}
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMessageResponse builds a success envelope carrying only a message.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// PaginationResponse describes the page returned by a list endpoint.
type PaginationResponse struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

// Date accepts either RFC 3339 timestamps or plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate parses value with the layouts accepted by Date.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	t, ok := ParseDate(raw)
	if !ok {
		return &time.ParseError{Layout: time.RFC3339, Value: raw, Message: ": expected RFC 3339 or YYYY-MM-DD"}
	}
	d.Time = t
	return nil
}

// Ptr returns the date as a pointer, nil for a nil receiver.
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// Money renders an amount as a JSON number rounded to cents.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
