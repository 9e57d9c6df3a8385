package database

import (
	"fmt"
	"log"

	"github.com/pdvcaixa/caixa-api/internal/config"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Operator accounts
		&entity.User{},

		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.AdditionalCategory{},
		&entity.Additional{},
		&entity.PaymentMethod{},

		// Sale entities
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.SaleItemAdditional{},

		// System entities
		&entity.StoreSettings{},
		&entity.FiscalConfig{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (payment methods,
// settings rows, admin account)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Default payment methods
	defaultMethods := []string{"Dinheiro", "Pix", "Cartão de Crédito", "Cartão de Débito"}
	for _, name := range defaultMethods {
		var existing entity.PaymentMethod
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			method := entity.PaymentMethod{Name: name}
			if err := db.Create(&method).Error; err != nil {
				log.Printf("Warning: failed to create payment method %s: %v", name, err)
			}
		}
	}

	// Single settings row
	var settingsCount int64
	db.Model(&entity.StoreSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := entity.StoreSettings{
			RecentSalesLimit:   10,
			RecentSalesEnabled: true,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create default settings: %v", err)
		}
	}

	// Single fiscal config row
	var fiscalCount int64
	db.Model(&entity.FiscalConfig{}).Count(&fiscalCount)
	if fiscalCount == 0 {
		fiscal := entity.FiscalConfig{FiscalEnvironment: "homologacao"}
		if err := db.Create(&fiscal).Error; err != nil {
			log.Printf("Warning: failed to create default fiscal config: %v", err)
		}
	}

	// Create admin account if configured via environment variables
	adminLogin := viper.GetString("ADMIN_LOGIN")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminLogin != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("login = ?", adminLogin).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrador"
				}
				adminUser := entity.User{
					Name:     adminName,
					Login:    adminLogin,
					Password: string(hashedPassword),
					Role:     enum.RoleAdmin,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminLogin)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminLogin)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
