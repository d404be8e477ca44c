package adapter

import (
	"context"

	"github.com/pennywise/backend/internal/domain/entity"
)

//go:generate mockgen -source=category_suggester.go -destination=category_suggester_mock.go -package=adapter

// CategorySuggestionRequest carries the free text of an expense.
type CategorySuggestionRequest struct {
	Title       string
	Description string
	Location    string
}

// CategorySuggestion is a proposed category with the model's confidence.
type CategorySuggestion struct {
	Category   entity.ExpenseCategory
	Confidence float64
	Reasoning  string
}

// CategorySuggester proposes an expense category from its text.
type CategorySuggester interface {
	// Suggest returns a category suggestion for the request.
	Suggest(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable reports whether the suggester is configured.
	IsAvailable() bool
}
