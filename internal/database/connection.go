// internal/database/connection.go
package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ffbazaar/ffbazaar-backend/internal/config"
	"github.com/ffbazaar/ffbazaar-backend/internal/models"
)

// ErrNotConfigured is returned when no record store endpoint is configured.
// The caller is expected to keep running in fallback mode.
var ErrNotConfigured = errors.New("record store endpoint not configured")

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}

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

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to record store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping record store: %w", err)
	}

	log.Println("Record store connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing record store connection: %v", err)
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running record store migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.Seller{},
		&models.Listing{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Record store migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_seller ON accounts(seller_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_featured ON accounts(featured)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_created_at ON accounts(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_sellers_rating ON sellers(rating DESC)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}
