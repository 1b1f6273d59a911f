package main

import (
	"fmt"
	"masroof/internal/config"
	"masroof/internal/database"
	"masroof/internal/handlers"
	"masroof/internal/logger"
	"masroof/internal/middleware"
	"masroof/internal/services"
	"masroof/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "masroof/internal/docs" // Import swagger docs
)

// @title           Masroof API
// @version         1.0
// @description     Masroof tracks personal expenses from bank SMS notifications. It extracts amounts and merchants from Arabic bank messages, classifies them with keyword rules, and aggregates spending over budget cycles.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey WebhookKey
// @in header
// @name X-API-Key
// @description Shared secret for the SMS ingestion webhook.

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

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	ruleService := services.NewRuleService(db)
	invoiceService := services.NewInvoiceService(db, ruleService)
	cycleService := services.NewCycleService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize handlers
	smsHandler := handlers.NewSMSHandler(invoiceService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	cycleHandler := handlers.NewCycleHandler(cycleService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// SMS ingestion webhook, guarded by the shared secret
	v1.POST("/sms", middleware.WebhookAuthMiddleware(appConfig.SMSAPIKey), smsHandler.ReceiveSMS)

	// Invoice routes
	invoices := v1.Group("/invoices")
	invoices.GET("", invoiceHandler.GetInvoices)
	invoices.GET("/:id", invoiceHandler.GetInvoice)
	invoices.PATCH("/:id", invoiceHandler.UpdateClassification)
	invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)

	// Classification rule routes
	rules := v1.Group("/rules")
	rules.POST("", ruleHandler.CreateRule)
	rules.GET("", ruleHandler.GetRules)
	rules.GET("/:id", ruleHandler.GetRule)
	rules.PUT("/:id", ruleHandler.UpdateRule)
	rules.DELETE("/:id", ruleHandler.DeleteRule)

	// Category routes
	categories := v1.Group("/categories")
	categories.GET("", ruleHandler.GetCategories)
	categories.GET("/:category/limit", ruleHandler.GetCategoryLimit)
	categories.GET("/:category/remaining", analyticsHandler.GetRemainingLimit)
	categories.GET("/:category/analysis", analyticsHandler.GetCategoryAnalysis)

	// Budget cycle routes
	cycles := v1.Group("/cycles")
	cycles.POST("", cycleHandler.StartCycle)
	cycles.GET("/current", cycleHandler.GetCurrentCycle)
	cycles.GET("/history", analyticsHandler.GetCycleHistory)
	cycles.GET("/:id/analysis", analyticsHandler.GetCycleAnalysis)

	log.Infof("Starting Masroof backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
