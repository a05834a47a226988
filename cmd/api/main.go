package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fintrack/internal/auth"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/store"

	_ "fintrack/internal/docs" // Import swagger docs
)

// @title           Personal Finance Tracker API
// @version         1.0
// @description     Minimal personal-finance tracking backend: registration, login, transactions, and monthly category budgets.

// @host      localhost:5000
// @BasePath  /

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// A failed initial connection is logged but not fatal: the server keeps
	// running and every request fails at the gateway until the store comes
	// back. This mirrors the original deployment's pool behavior.
	var db *gorm.DB
	if manager, err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Errorf("Error connecting to database: %v", err)
	} else {
		log.Info("Connected to database")
		db = manager.DB()
	}

	gateway := store.New(db)
	hasher := auth.NewHasher()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handlers.NewAuthHandler(gateway, hasher, tokens)
	transactionHandler := handlers.NewTransactionHandler(gateway)
	budgetHandler := handlers.NewBudgetHandler(gateway)
	userHandler := handlers.NewUserHandler(gateway)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Personal Finance Tracker API")
	})

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/refresh", authHandler.Refresh)
	router.POST("/transactions", transactionHandler.AddTransaction)
	router.POST("/budgets", budgetHandler.SetBudget)
	router.GET("/users", userHandler.ListUsers)

	log.Infof("Server running on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
