package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// NewCategorySuggester returns a Gemini backed suggester that falls back to
// keyword matching. Without an API key only keyword matching is used.
func NewCategorySuggester(apiKey string) adapter.CategorySuggester {
	keywords := NewKeywordCategorySuggester()
	if apiKey == "" {
		return keywords
	}
	return &fallbackSuggester{
		primary:  NewGeminiCategorySuggester(apiKey),
		fallback: keywords,
	}
}

// GeminiCategorySuggester asks Gemini for the expense category.
type GeminiCategorySuggester struct {
	apiKey    string
	modelName string
}

// NewGeminiCategorySuggester creates a new Gemini suggester.
func NewGeminiCategorySuggester(apiKey string) *GeminiCategorySuggester {
	return &GeminiCategorySuggester{
		apiKey:    apiKey,
		modelName: defaultGeminiModel,
	}
}

// IsAvailable checks if the suggester has an API key.
func (s *GeminiCategorySuggester) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest sends the expense text to Gemini and parses its JSON answer.
func (s *GeminiCategorySuggester) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildCategoryPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return parseCategorySuggestion(string(text))
		}
	}
	return nil, fmt.Errorf("no text content in response")
}

func buildCategoryPrompt(request adapter.CategorySuggestionRequest) string {
	categories := make([]string, len(entity.ExpenseCategories))
	for i, c := range entity.ExpenseCategories {
		categories[i] = string(c)
	}

	var sb strings.Builder
	sb.WriteString("You classify personal expenses. Pick exactly one category from this list: ")
	sb.WriteString(strings.Join(categories, ", "))
	sb.WriteString(".\n\nExpense:\n")
	fmt.Fprintf(&sb, "- Title: %q\n", request.Title)
	if request.Description != "" {
		fmt.Fprintf(&sb, "- Description: %q\n", request.Description)
	}
	if request.Location != "" {
		fmt.Fprintf(&sb, "- Location: %q\n", request.Location)
	}
	sb.WriteString(`
Answer with a single JSON object and nothing else:
{"category": "<one of the categories>", "confidence": 0.0-1.0, "reasoning": "one short sentence"}
`)
	return sb.String()
}

type geminiCategoryAnswer struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseCategorySuggestion accepts the model answer, with or without a
// markdown code fence. Unknown categories become "other".
func parseCategorySuggestion(text string) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var answer geminiCategoryAnswer
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	category := entity.ExpenseCategory(strings.ToLower(strings.TrimSpace(answer.Category)))
	if !category.IsValid() {
		category = entity.ExpenseCategoryOther
	}

	confidence := answer.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &adapter.CategorySuggestion{
		Category:   category,
		Confidence: confidence,
		Reasoning:  answer.Reasoning,
	}, nil
}

// fallbackSuggester tries primary and answers from fallback when it fails.
type fallbackSuggester struct {
	primary  adapter.CategorySuggester
	fallback adapter.CategorySuggester
}

func (s *fallbackSuggester) IsAvailable() bool {
	return s.primary.IsAvailable() || s.fallback.IsAvailable()
}

func (s *fallbackSuggester) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if s.primary.IsAvailable() {
		suggestion, err := s.primary.Suggest(ctx, request)
		if err == nil {
			return suggestion, nil
		}
		slog.Warn("Category suggestion failed, using keyword matching", "error", err)
	}
	return s.fallback.Suggest(ctx, request)
}
