package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

const internalErrorMessage = "An internal error occurred"

// bindJSON decodes the request body, answering 400 when it is not valid JSON.
// An empty body decodes to the zero value.
func bindJSON(ctx *gin.Context, req any) bool {
	if ctx.Request.ContentLength == 0 {
		return true
	}
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body",
			string(domainerror.ErrCodeInvalidRequest),
		))
		return false
	}
	return true
}

// currentUserID returns the id placed in the context by the auth middleware.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			"Access denied. No token provided.",
			string(domainerror.ErrCodeMissingToken),
		))
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id parameter. A malformed id cannot name an existing
// resource, so it is answered like a missing one.
func pathID(ctx *gin.Context, notFoundMessage, notFoundCode string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(notFoundMessage, notFoundCode))
		return uuid.Nil, false
	}
	return id, true
}

// handleValidationError writes a 400 with the field list when err is a ValidationError.
func handleValidationError(ctx *gin.Context, err error) bool {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(validationErr))
		return true
	}
	return false
}

// handleInternalError logs err and hides it behind a generic message.
func handleInternalError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(internalErrorMessage, ""))
}

func queryInt(ctx *gin.Context, key string) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func queryBool(ctx *gin.Context, key string) *bool {
	v, err := strconv.ParseBool(ctx.Query(key))
	if err != nil {
		return nil
	}
	return &v
}
