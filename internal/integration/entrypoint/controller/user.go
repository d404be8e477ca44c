package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/application/usecase/auth"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// UserController handles the authenticated user's own account.
type UserController struct {
	getProfileUseCase     *auth.GetProfileUseCase
	updateProfileUseCase  *auth.UpdateProfileUseCase
	changePasswordUseCase *auth.ChangePasswordUseCase
	deactivateUseCase     *auth.DeactivateAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *auth.GetProfileUseCase,
	updateProfileUseCase *auth.UpdateProfileUseCase,
	changePasswordUseCase *auth.ChangePasswordUseCase,
	deactivateUseCase *auth.DeactivateAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
		deactivateUseCase:     deactivateUseCase,
	}
}

// GetProfile handles GET /auth/profile requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{UserID: userID})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: dto.ToUserResponse(output.User)})
}

// UpdateProfile handles PUT /auth/profile requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), auth.UpdateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "Profile updated successfully",
		User:    dto.ToUserResponse(output.User),
	})
}

// ChangePassword handles PUT /auth/change-password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.changePasswordUseCase.Execute(ctx.Request.Context(), auth.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(output.Message))
}

// DeactivateAccount handles DELETE /users/me requests.
func (c *UserController) DeactivateAccount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.DeactivateAccountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.deactivateUseCase.Execute(ctx.Request.Context(), auth.DeactivateAccountInput{
		UserID:   userID,
		Password: req.Password,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(output.Message))
}
