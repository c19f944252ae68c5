package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"finbot/internal/advisor"
	"finbot/internal/config"
	"finbot/internal/database"
	"finbot/internal/handlers"
	"finbot/internal/logger"
	"finbot/internal/middleware"
	"finbot/internal/services"
	"finbot/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)
	goalService := services.NewGoalService(db)
	budgetService := services.NewBudgetService(db)
	gateway := services.NewFinanceGateway(transactionService, goalService)

	adv := advisor.New(gateway, transactionService, goalService, budgetService, advisor.Options{
		GeminiAPIKey: appConfig.GeminiAPIKey,
		GeminiModel:  appConfig.GeminiModel,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	goalHandler := handlers.NewGoalHandler(goalService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	chatHandler := handlers.NewChatHandler(adv)
	exchangeHandler := handlers.NewExchangeHandler(userService, transactionService, goalService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/balance", transactionHandler.GetBalance)
	transactions.GET("/summary/monthly", transactionHandler.GetMonthlySummary)
	transactions.GET("/summary/categories", transactionHandler.GetCategorySummary)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetUserGoals)
	goals.GET("/stats", goalHandler.GetGoalStats)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.PUT("/:id/progress", goalHandler.UpdateGoalProgress)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.SetBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Advisory chat
	protected.POST("/chat", chatHandler.Chat)

	// Import/export routes
	exports := protected.Group("/export")
	exports.GET("/transactions.csv", exchangeHandler.ExportTransactionsCSV)
	exports.GET("/goals.csv", exchangeHandler.ExportGoalsCSV)
	exports.GET("/backup.json", exchangeHandler.ExportBackup)
	exports.GET("/report.pdf", exchangeHandler.ExportReportPDF)

	imports := protected.Group("/import")
	imports.POST("/transactions.csv", exchangeHandler.ImportTransactionsCSV)
	imports.POST("/backup.json", exchangeHandler.ImportBackup)

	log.Infof("Starting FinBot backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
