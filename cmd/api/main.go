package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/config"
	"github.com/pdvcaixa/caixa-api/internal/infrastructure/database"
	"github.com/pdvcaixa/caixa-api/internal/infrastructure/repository"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/handler"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/routes"
	"github.com/pdvcaixa/caixa-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Report days follow the store's timezone, not the server's
	location, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		log.Printf("Warning: invalid timezone %q, falling back to local: %v", cfg.Database.Timezone, err)
		location = time.Local
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	additionalRepo := repository.NewAdditionalRepository(db)
	additionalCategoryRepo := repository.NewAdditionalCategoryRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	fiscalRepo := repository.NewFiscalConfigRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, additionalCategoryRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	additionalService := service.NewAdditionalService(additionalRepo, additionalCategoryRepo)
	paymentService := service.NewPaymentMethodService(paymentRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, additionalRepo, paymentRepo)
	reportService := service.NewReportService(saleRepo, productRepo, paymentRepo, categoryRepo, location)
	settingsService := service.NewSettingsService(settingsRepo, fiscalRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Additional: handler.NewAdditionalHandler(additionalService),
		Payment:    handler.NewPaymentMethodHandler(paymentService),
		Sale:       handler.NewSaleHandler(saleService, location),
		Report:     handler.NewReportHandler(reportService, location),
		Settings:   handler.NewSettingsHandler(settingsService),
	}

	// Periodically purge expired idempotency keys
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
