// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pennywise/backend/config"
	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/auth"
	"github.com/pennywise/backend/internal/application/usecase/bill"
	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/application/usecase/goal"
	"github.com/pennywise/backend/internal/infra/server/router"
	"github.com/pennywise/backend/internal/integration/adapters"
	"github.com/pennywise/backend/internal/integration/email"
	"github.com/pennywise/backend/internal/integration/email/templates"
	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
	"github.com/pennywise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// Checks reports the health of the backing services. A nil Cache means
// Redis is not configured.
type Checks struct {
	DB    func() bool
	Cache func() bool
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits are kept in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, checks Checks) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	billRepo := persistence.NewBillRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(adapters.TokenConfig{
		Secret:          cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTokenExpiry,
		RefreshTokenTTL: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	categorySuggester := adapters.NewCategorySuggester(cfg.AI.GeminiAPIKey)

	// Create email service and worker
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, newEmailSender(cfg.Email), renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)
	authenticateUseCase := auth.NewAuthenticateUserUseCase(userRepo, tokenService)

	// Create profile use cases
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)
	deactivateAccountUseCase := auth.NewDeactivateAccountUseCase(userRepo, passwordService, tokenService)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	expenseSummaryUseCase := expense.NewGetExpenseSummaryUseCase(expenseRepo)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(categorySuggester)

	// Create bill use cases
	listBillsUseCase := bill.NewListBillsUseCase(billRepo)
	createBillUseCase := bill.NewCreateBillUseCase(billRepo)
	getBillUseCase := bill.NewGetBillUseCase(billRepo)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo)
	markBillPaidUseCase := bill.NewMarkBillPaidUseCase(billRepo)
	upcomingBillsUseCase := bill.NewGetUpcomingBillsUseCase(billRepo)
	overdueBillsUseCase := bill.NewGetOverdueBillsUseCase(billRepo)
	billSummaryUseCase := bill.NewGetBillSummaryUseCase(billRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addFundsUseCase := goal.NewAddFundsUseCase(goalRepo)
	withdrawFundsUseCase := goal.NewWithdrawFundsUseCase(goalRepo)
	updateGoalStatusUseCase := goal.NewUpdateGoalStatusUseCase(goalRepo)
	goalSummaryUseCase := goal.NewGetGoalSummaryUseCase(goalRepo)

	// Create controllers
	healthController := controller.NewHealthController(checks.DB, checks.Cache)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
		deactivateAccountUseCase,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		expenseSummaryUseCase,
		suggestCategoryUseCase,
	)
	billController := controller.NewBillController(
		listBillsUseCase,
		createBillUseCase,
		getBillUseCase,
		updateBillUseCase,
		deleteBillUseCase,
		markBillPaidUseCase,
		upcomingBillsUseCase,
		overdueBillsUseCase,
		billSummaryUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		addFundsUseCase,
		withdrawFundsUseCase,
		updateGoalStatusUseCase,
		goalSummaryUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		Name:           "login",
		MaxAttempts:    cfg.RateLimit.LoginAttempts,
		WindowDuration: cfg.RateLimit.Window,
		Disabled:       !cfg.RateLimit.Enabled,
	})
	forgotPasswordRateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		Name:           "forgot-password",
		MaxAttempts:    cfg.RateLimit.ForgotPasswordAttempts,
		WindowDuration: cfg.RateLimit.Window,
		Disabled:       !cfg.RateLimit.Enabled,
	})
	authMiddleware := middleware.NewAuthMiddleware(authenticateUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		expenseController,
		billController,
		goalController,
		loginRateLimiter,
		forgotPasswordRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}

func newEmailSender(cfg config.EmailConfig) adapter.EmailSender {
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		return email.NewLogSender()
	}
	client := email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
	if cfg.ResendBaseURL != "" {
		if err := client.SetBaseURL(cfg.ResendBaseURL); err != nil {
			slog.Warn("Ignoring RESEND_BASE_URL", "error", err)
		}
	}
	return client
}
