package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ledgerly/internal/config"
	"ledgerly/internal/database"
	"ledgerly/internal/handlers"
	"ledgerly/internal/logger"
	"ledgerly/internal/middleware"
	"ledgerly/internal/services"
	"ledgerly/internal/validator"
)

const version = "1.0.0"

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	creditCardService := services.NewCreditCardService(db)
	recurringService := services.NewRecurringService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	creditCardHandler := handlers.NewCreditCardHandler(creditCardService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS: allowlist comes from CORS_ORIGINS
	corsConfig := cors.Config{
		AllowOrigins:     appConfig.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(appConfig.CORSOrigins) == 1 && appConfig.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	// API group
	api := router.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Ledgerly API", "version": version})
	})
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(userService))

	protected.GET("/auth/me", authHandler.Me)

	income := protected.Group("/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.ListIncomes)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.GET("", budgetHandler.GetBudget)
	budgets.GET("/alerts", budgetHandler.GetBudgetAlerts)

	cards := protected.Group("/credit-cards")
	cards.POST("", creditCardHandler.CreateCreditCard)
	cards.GET("", creditCardHandler.ListCreditCards)
	cards.DELETE("/:id", creditCardHandler.DeleteCreditCard)

	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateRecurringItem)
	recurring.GET("", recurringHandler.ListRecurringItems)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurringItem)
	recurring.POST("/process", recurringHandler.ProcessRecurringItems)

	analytics := protected.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.GetSummary)
	analytics.GET("/trends", analyticsHandler.GetTrends)
	analytics.GET("/category-trends", analyticsHandler.GetCategoryTrends)

	log.Infof("Starting Ledgerly backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
