// Package router assembles the HTTP API: services, handlers, middleware and
// routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fintrack/internal/config"
	"fintrack/internal/events"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/token"

	_ "fintrack/internal/docs" // swagger docs
)

// Deps holds what the router needs from the process.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Codec     *token.Codec
	Publisher events.Publisher

	// UserService overrides the default bcrypt-backed service.
	UserService services.UserServicer
}

// New builds the Gin engine with every route registered.
func New(deps Deps) *gin.Engine {
	db := deps.DB
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	// Services
	userService := deps.UserService
	if userService == nil {
		userService = services.NewUserService(db)
	}
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	evaluator := services.NewBudgetEvaluator(db, publisher)
	transactionService := services.NewTransactionService(db, accountService, evaluator)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewGoalService(db)
	notificationService := services.NewNotificationService(db)
	analyticsService := services.NewAnalyticsService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService, deps.Codec, deps.Config.TokenTTL)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(userService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors(deps.Config.CORSAllowedOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Operator routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(deps.Config.AdminAPIKey))
	admin.GET("/users", adminHandler.ListUsers)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Codec, userService))

	me := protected.Group("/users/me")
	me.GET("", authHandler.GetCurrentUser)
	me.POST("/password", authHandler.ChangePassword)
	me.DELETE("", authHandler.DeleteCurrentUser)

	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetUserAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.GET("/:id/transactions", transactionHandler.GetAccountTransactions)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	protected.GET("/notifications", notificationHandler.GetNotifications)

	analytics := protected.Group("/analytics")
	analytics.GET("/dashboard", analyticsHandler.GetDashboard)
	analytics.GET("/trends", analyticsHandler.GetSpendingTrends)
	analytics.GET("/expenses", analyticsHandler.GetExpensesByCategory)
	analytics.GET("/expenses/report", analyticsHandler.GetExpenseReport)

	return router
}

func cors(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
