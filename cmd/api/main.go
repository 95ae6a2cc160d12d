package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/infrastructure/database"
	"github.com/swarnaabhushan/backoffice-api/internal/infrastructure/repository"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/handler"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/routes"
	"github.com/swarnaabhushan/backoffice-api/pkg/invoice"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
)

func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(&cfg.App)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Amounts are JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Connect to database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed the operator account
	if err := database.SeedAdmin(context.Background(), db, cfg, logger); err != nil {
		logger.Warn("failed to seed admin user", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.App.Name)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Invoice renderer
	renderer := invoice.NewRenderer(invoice.Brand{
		Name:    cfg.Brand.Name,
		Address: cfg.Brand.Address,
		Phone:   cfg.Brand.Phone,
		Email:   cfg.Brand.Email,
		GSTIN:   cfg.Brand.GSTIN,
	}, cfg.Invoice.LogoPath)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, cfg.Security, logger)
	userService := service.NewUserService(userRepo, cfg.Security, logger)
	itemService := service.NewItemService(itemRepo, logger)
	billService := service.NewBillService(billRepo, userRepo, renderer, cfg.Payment, logger)
	paymentService := service.NewPaymentService(paymentRepo, billRepo, userRepo, cfg.Payment, logger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Item:    handler.NewItemHandler(itemService),
		Bill:    handler.NewBillHandler(billService),
		Payment: handler.NewPaymentHandler(paymentService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Log:             logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "4000"
	}

	logger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
