package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase    *expense.ListExpensesUseCase
	createUseCase  *expense.CreateExpenseUseCase
	getUseCase     *expense.GetExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	summaryUseCase *expense.GetExpenseSummaryUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	summaryUseCase *expense.GetExpenseSummaryUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	input := expense.ListExpensesInput{
		UserID:    userID,
		Search:    strings.TrimSpace(ctx.Query("search")),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      queryInt(ctx, "page"),
		Limit:     queryInt(ctx, "limit"),
	}
	if v := ctx.Query("category"); v != "" {
		category := entity.ExpenseCategory(v)
		input.Category = &category
	}
	if v, ok := dto.ParseDate(ctx.Query("startDate")); ok {
		input.StartDate = &v
	}
	if v, ok := dto.ParseDate(ctx.Query("endDate")); ok {
		input.EndDate = &v
	}
	if v, err := decimal.NewFromString(ctx.Query("minAmount")); err == nil {
		input.MinAmount = &v
	}
	if v, err := decimal.NewFromString(ctx.Query("maxAmount")); err == nil {
		input.MaxAmount = &v
	}
	if v := ctx.Query("tags"); v != "" {
		input.Tags = strings.Split(v, ",")
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Summary handles GET /expenses/stats/summary requests.
func (c *ExpenseController) Summary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), expense.GetExpenseSummaryInput{
		UserID: userID,
		Period: ctx.Query("period"),
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.UserID = userID
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ExpenseEnvelope{
		Success: true,
		Message: "Expense created successfully",
		Expense: dto.ToExpenseResponse(output.Expense),
	})
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	expenseID, ok := c.expenseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{ExpenseID: expenseID, UserID: userID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseEnvelope{Success: true, Expense: dto.ToExpenseResponse(output.Expense)})
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	expenseID, ok := c.expenseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.ExpenseID = expenseID
	input.UserID = userID
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseEnvelope{
		Success: true,
		Message: "Expense updated successfully",
		Expense: dto.ToExpenseResponse(output.Expense),
	})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	expenseID, ok := c.expenseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ExpenseID: expenseID, UserID: userID}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Expense deleted successfully"))
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	if _, ok := currentUserID(ctx); !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySuggestionResponse(output.Suggestion))
}

func (c *ExpenseController) expenseID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathID(ctx, "Expense not found", string(domainerror.ErrCodeExpenseNotFound))
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	if handleValidationError(ctx, err) {
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expenseErr.Code), dto.NewErrorResponse(expenseErr.Message, string(expenseErr.Code)))
		return
	}

	handleInternalError(ctx, err)
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeExpenseDateInFuture:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
