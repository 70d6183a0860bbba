// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sproutlabs/sprout-backend/internal/config"
	"github.com/sproutlabs/sprout-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Product{},
		&models.ShopSettings{},
		&models.Message{},
		&models.Profile{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_platform_stock ON products(platform, stock_count)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(sender_id, recipient_id, timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_profiles_role ON profiles(role)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData seeds the two simulated profiles and the singleton shop
// settings row the storefront expects.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var profileCount int64
	db.Model(&models.Profile{}).Count(&profileCount)

	if profileCount == 0 {
		profiles := []models.Profile{
			{
				DisplayName: "Ava",
				Bio:         "Shop owner. Every product gets a review video before it goes on sale.",
				Role:        models.RoleOwner,
			},
			{
				DisplayName: "Sam",
				Bio:         "Browsing and gifting.",
				Role:        models.RoleShopper,
			},
		}

		for i := range profiles {
			if err := db.Create(&profiles[i]).Error; err != nil {
				return fmt.Errorf("failed to create seed profile: %w", err)
			}
		}

		log.Println("Seed profiles created successfully")
	}

	var settingsCount int64
	db.Model(&models.ShopSettings{}).Where("key = ?", models.SettingsKey).Count(&settingsCount)

	if settingsCount == 0 {
		settings := models.ShopSettings{
			Key:          models.SettingsKey,
			ShopName:     "Sprout Shop",
			Tagline:      "Tried it first, so you don't have to",
			Theme:        "default",
			AssociateTag: "sproutshop-20",
		}

		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to create default shop settings: %w", err)
		}

		log.Println("Default shop settings created successfully")
	}

	log.Println("Initial data seeding completed")
	return nil
}
