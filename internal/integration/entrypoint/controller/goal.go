package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/usecase/goal"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	createUseCase   *goal.CreateGoalUseCase
	getUseCase      *goal.GetGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
	addFundsUseCase *goal.AddFundsUseCase
	withdrawUseCase *goal.WithdrawFundsUseCase
	statusUseCase   *goal.UpdateGoalStatusUseCase
	summaryUseCase  *goal.GetGoalSummaryUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	addFundsUseCase *goal.AddFundsUseCase,
	withdrawUseCase *goal.WithdrawFundsUseCase,
	statusUseCase *goal.UpdateGoalStatusUseCase,
	summaryUseCase *goal.GetGoalSummaryUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		addFundsUseCase: addFundsUseCase,
		withdrawUseCase: withdrawUseCase,
		statusUseCase:   statusUseCase,
		summaryUseCase:  summaryUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	input := goal.ListGoalsInput{
		UserID:    userID,
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      queryInt(ctx, "page"),
		Limit:     queryInt(ctx, "limit"),
	}
	if v := ctx.Query("status"); v != "" {
		status := entity.GoalStatus(v)
		input.Status = &status
	}
	if v := ctx.Query("category"); v != "" {
		category := entity.GoalCategory(v)
		input.Category = &category
	}
	if v := ctx.Query("priority"); v != "" {
		priority := entity.GoalPriority(v)
		input.Priority = &priority
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output, time.Now().UTC()))
}

// Summary handles GET /goals/stats/summary requests.
func (c *GoalController) Summary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalSummaryResponse(output))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.UserID = userID
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	c.respondGoal(ctx, http.StatusCreated, "Goal created successfully", output.Goal)
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, goalID, ok := c.ids(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID, UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	c.respondGoal(ctx, http.StatusOK, "", output.Goal)
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, goalID, ok := c.ids(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.GoalID = goalID
	input.UserID = userID
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	c.respondGoal(ctx, http.StatusOK, "Goal updated successfully", output.Goal)
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, goalID, ok := c.ids(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID, UserID: userID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Goal deleted successfully"))
}

// AddFunds handles PATCH /goals/:id/add-funds requests.
func (c *GoalController) AddFunds(ctx *gin.Context) {
	c.fund(ctx, c.addFundsUseCase.Execute, "Funds added successfully")
}

// WithdrawFunds handles PATCH /goals/:id/withdraw-funds requests.
func (c *GoalController) WithdrawFunds(ctx *gin.Context) {
	c.fund(ctx, c.withdrawUseCase.Execute, "Funds withdrawn successfully")
}

// UpdateStatus handles PATCH /goals/:id/status requests.
func (c *GoalController) UpdateStatus(ctx *gin.Context) {
	userID, goalID, ok := c.ids(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalStatusInput{
		GoalID: goalID,
		UserID: userID,
		Status: entity.GoalStatus(req.Status),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	c.respondGoal(ctx, http.StatusOK, "Goal status updated successfully", output.Goal)
}

type fundFunc func(ctx context.Context, input goal.FundGoalInput) (*goal.FundGoalOutput, error)

func (c *GoalController) fund(ctx *gin.Context, execute fundFunc, message string) {
	userID, goalID, ok := c.ids(ctx)
	if !ok {
		return
	}

	var req dto.FundGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := goal.FundGoalInput{GoalID: goalID, UserID: userID}
	if req.Amount != nil {
		input.Amount = *req.Amount
	}
	output, err := execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	c.respondGoal(ctx, http.StatusOK, message, output.Goal)
}

func (c *GoalController) respondGoal(ctx *gin.Context, status int, message string, g *entity.Goal) {
	ctx.JSON(status, dto.GoalEnvelope{
		Success: true,
		Message: message,
		Goal:    dto.ToGoalResponse(g, time.Now().UTC()),
	})
}

func (c *GoalController) ids(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	goalID, ok := pathID(ctx, "Goal not found", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, goalID, true
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	if handleValidationError(ctx, err) {
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.NewErrorResponse(goalErr.Message, string(goalErr.Code)))
		return
	}

	handleInternalError(ctx, err)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInsufficientFunds,
		domainerror.ErrCodeCurrentExceedsTarget,
		domainerror.ErrCodeDeadlineInPast,
		domainerror.ErrCodeMilestoneExceedsTarget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
