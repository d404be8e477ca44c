package adapters

import (
	"context"
	"strings"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

var categoryKeywords = []struct {
	category entity.ExpenseCategory
	keywords []string
}{
	{entity.ExpenseCategoryFood, []string{"grocer", "restaurant", "lunch", "dinner", "breakfast", "coffee", "cafe", "pizza", "burger", "bakery", "supermarket", "food", "snack"}},
	{entity.ExpenseCategoryTransport, []string{"uber", "lyft", "taxi", "bus", "train", "metro", "subway", "fuel", "gas station", "petrol", "parking", "toll"}},
	{entity.ExpenseCategoryEntertainment, []string{"movie", "cinema", "concert", "netflix", "spotify", "game", "theater", "theatre", "museum", "streaming"}},
	{entity.ExpenseCategoryUtilities, []string{"electric", "water bill", "power", "internet", "phone bill", "utility", "heating"}},
	{entity.ExpenseCategoryHealthcare, []string{"pharmacy", "doctor", "dentist", "hospital", "clinic", "medicine", "health", "gym"}},
	{entity.ExpenseCategoryShopping, []string{"amazon", "clothes", "shoes", "mall", "store", "electronics", "shopping"}},
	{entity.ExpenseCategoryEducation, []string{"tuition", "course", "book", "school", "university", "class", "udemy"}},
	{entity.ExpenseCategoryTravel, []string{"hotel", "flight", "airbnb", "airline", "vacation", "trip", "hostel"}},
}

// KeywordCategorySuggester matches well known words in the expense text.
type KeywordCategorySuggester struct{}

// NewKeywordCategorySuggester creates a new keyword suggester.
func NewKeywordCategorySuggester() *KeywordCategorySuggester {
	return &KeywordCategorySuggester{}
}

// IsAvailable is always true.
func (s *KeywordCategorySuggester) IsAvailable() bool {
	return true
}

// Suggest picks the category with the most keyword hits; ties go to the
// category listed first. No hit yields "other" with zero confidence.
func (s *KeywordCategorySuggester) Suggest(_ context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	text := strings.ToLower(strings.Join([]string{request.Title, request.Description, request.Location}, " "))

	best, bestHits, matched := entity.ExpenseCategoryOther, 0, ""
	for _, candidate := range categoryKeywords {
		hits, first := 0, ""
		for _, keyword := range candidate.keywords {
			if strings.Contains(text, keyword) {
				if hits == 0 {
					first = keyword
				}
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits, matched = candidate.category, hits, first
		}
	}

	if bestHits == 0 {
		return &adapter.CategorySuggestion{
			Category:  entity.ExpenseCategoryOther,
			Reasoning: "no known keyword found",
		}, nil
	}

	confidence := 0.5 + 0.15*float64(bestHits-1)
	if confidence > 0.9 {
		confidence = 0.9
	}
	return &adapter.CategorySuggestion{
		Category:   best,
		Confidence: confidence,
		Reasoning:  "matched keyword \"" + matched + "\"",
	}, nil
}
