package expense

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pennywise/backend/internal/application/adapter"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// SuggestCategoryInput carries the text of a draft expense.
type SuggestCategoryInput struct {
	Title       string
	Description string
	Location    string
}

// SuggestCategoryOutput is the proposed category.
type SuggestCategoryOutput struct {
	Suggestion *adapter.CategorySuggestion
}

// SuggestCategoryUseCase proposes a category for an expense that is not saved yet.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{suggester: suggester}
}

// Execute asks the configured suggester for a category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	title := strings.TrimSpace(input.Title)
	if len(title) < 2 {
		return nil, domainerror.NewValidationError("title", "title must be at least 2 characters")
	}

	suggestion, err := uc.suggester.Suggest(ctx, adapter.CategorySuggestionRequest{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
	})
	if err != nil {
		slog.Error("Category suggestion failed", "error", err)
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion is unavailable right now",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	return &SuggestCategoryOutput{Suggestion: suggestion}, nil
}
