package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/usecase/bill"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// BillController handles bill endpoints.
type BillController struct {
	listUseCase     *bill.ListBillsUseCase
	createUseCase   *bill.CreateBillUseCase
	getUseCase      *bill.GetBillUseCase
	updateUseCase   *bill.UpdateBillUseCase
	deleteUseCase   *bill.DeleteBillUseCase
	markPaidUseCase *bill.MarkBillPaidUseCase
	upcomingUseCase *bill.GetUpcomingBillsUseCase
	overdueUseCase  *bill.GetOverdueBillsUseCase
	summaryUseCase  *bill.GetBillSummaryUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listUseCase *bill.ListBillsUseCase,
	createUseCase *bill.CreateBillUseCase,
	getUseCase *bill.GetBillUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
	markPaidUseCase *bill.MarkBillPaidUseCase,
	upcomingUseCase *bill.GetUpcomingBillsUseCase,
	overdueUseCase *bill.GetOverdueBillsUseCase,
	summaryUseCase *bill.GetBillSummaryUseCase,
) *BillController {
	return &BillController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		markPaidUseCase: markPaidUseCase,
		upcomingUseCase: upcomingUseCase,
		overdueUseCase:  overdueUseCase,
		summaryUseCase:  summaryUseCase,
	}
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	input := bill.ListBillsInput{
		UserID:    userID,
		IsActive:  queryBool(ctx, "isActive"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      queryInt(ctx, "page"),
		Limit:     queryInt(ctx, "limit"),
	}
	if v := ctx.Query("category"); v != "" {
		category := entity.BillCategory(v)
		input.Category = &category
	}
	if v := ctx.Query("frequency"); v != "" {
		frequency := entity.Frequency(v)
		input.Frequency = &frequency
	}
	if v := queryBool(ctx, "isOverdue"); v != nil {
		input.IsOverdue = *v
	}
	if v := queryBool(ctx, "isDueSoon"); v != nil {
		input.IsDueSoon = *v
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output))
}

// Upcoming handles GET /bills/upcoming/summary requests.
func (c *BillController) Upcoming(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.upcomingUseCase.Execute(ctx.Request.Context(), bill.GetUpcomingBillsInput{UserID: userID})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpcomingBillsResponse(output))
}

// Overdue handles GET /bills/overdue/summary requests.
func (c *BillController) Overdue(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.overdueUseCase.Execute(ctx.Request.Context(), bill.GetOverdueBillsInput{UserID: userID})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverdueBillsResponse(output))
}

// Summary handles GET /bills/stats/summary requests.
func (c *BillController) Summary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), bill.GetBillSummaryInput{UserID: userID})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillSummaryResponse(output))
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.UserID = userID
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BillEnvelope{
		Success: true,
		Message: "Bill created successfully",
		Bill:    dto.ToBillResponse(output.Bill, time.Now().UTC()),
	})
}

// Get handles GET /bills/:id requests.
func (c *BillController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	billID, ok := c.billID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), bill.GetBillInput{BillID: billID, UserID: userID})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BillEnvelope{Success: true, Bill: dto.ToBillResponse(output.Bill, time.Now().UTC())})
}

// Update handles PUT /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	billID, ok := c.billID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.BillID = billID
	input.UserID = userID
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BillEnvelope{
		Success: true,
		Message: "Bill updated successfully",
		Bill:    dto.ToBillResponse(output.Bill, time.Now().UTC()),
	})
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	billID, ok := c.billID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), bill.DeleteBillInput{BillID: billID, UserID: userID}); err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Bill deleted successfully"))
}

// MarkPaid handles PATCH /bills/:id/mark-paid requests.
func (c *BillController) MarkPaid(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	billID, ok := c.billID(ctx)
	if !ok {
		return
	}

	var req dto.MarkBillPaidRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), bill.MarkBillPaidInput{
		BillID:        billID,
		UserID:        userID,
		Amount:        req.Amount,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Reference:     req.Reference,
	})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarkBillPaidResponse(output, time.Now().UTC()))
}

func (c *BillController) billID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathID(ctx, "Bill not found", string(domainerror.ErrCodeBillNotFound))
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	if handleValidationError(ctx, err) {
		return
	}

	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(c.getStatusCodeForBillError(billErr.Code), dto.NewErrorResponse(billErr.Message, string(billErr.Code)))
		return
	}

	handleInternalError(ctx, err)
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *BillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDueDateInPast:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
