// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                    *gin.Engine
	healthController          *controller.HealthController
	authController            *controller.AuthController
	userController            *controller.UserController
	expenseController         *controller.ExpenseController
	billController            *controller.BillController
	goalController            *controller.GoalController
	loginRateLimiter          *middleware.RateLimiter
	forgotPasswordRateLimiter *middleware.RateLimiter
	authMiddleware            *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	expenseController *controller.ExpenseController,
	billController *controller.BillController,
	goalController *controller.GoalController,
	loginRateLimiter *middleware.RateLimiter,
	forgotPasswordRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:          healthController,
		authController:            authController,
		userController:            userController,
		expenseController:         expenseController,
		billController:            billController,
		goalController:            goalController,
		loginRateLimiter:          loginRateLimiter,
		forgotPasswordRateLimiter: forgotPasswordRateLimiter,
		authMiddleware:            authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate()

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
		auth.POST("/forgot-password", r.forgotPasswordRateLimiter.Middleware(), r.authController.ForgotPassword)
		auth.POST("/reset-password", r.authController.ResetPassword)

		auth.GET("/profile", authenticated, r.userController.GetProfile)
		auth.PUT("/profile", authenticated, r.userController.UpdateProfile)
		auth.PUT("/change-password", authenticated, r.userController.ChangePassword)
	}

	users := v1.Group("/users", authenticated)
	{
		users.DELETE("/me", r.userController.DeactivateAccount)
	}

	// Static paths are registered next to /:id; gin prefers the static segment.
	expenses := v1.Group("/expenses", authenticated)
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.GET("/stats/summary", r.expenseController.Summary)
		expenses.POST("/suggest-category", r.expenseController.SuggestCategory)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PUT("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	bills := v1.Group("/bills", authenticated)
	{
		bills.GET("", r.billController.List)
		bills.POST("", r.billController.Create)
		bills.GET("/upcoming/summary", r.billController.Upcoming)
		bills.GET("/overdue/summary", r.billController.Overdue)
		bills.GET("/stats/summary", r.billController.Summary)
		bills.GET("/:id", r.billController.Get)
		bills.PUT("/:id", r.billController.Update)
		bills.DELETE("/:id", r.billController.Delete)
		bills.PATCH("/:id/mark-paid", r.billController.MarkPaid)
	}

	goals := v1.Group("/goals", authenticated)
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/stats/summary", r.goalController.Summary)
		goals.GET("/:id", r.goalController.Get)
		goals.PUT("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.PATCH("/:id/add-funds", r.goalController.AddFunds)
		goals.PATCH("/:id/withdraw-funds", r.goalController.WithdrawFunds)
		goals.PATCH("/:id/status", r.goalController.UpdateStatus)
	}
}
