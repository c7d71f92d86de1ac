package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Conceptual-Machines/harmonia-api/internal/models"
)

// Connect opens the postgres database
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Migrate runs schema migrations for all persisted models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.SavedProgression{}); err != nil {
		return fmt.Errorf("failed to migrate saved progressions: %w", err)
	}
	return nil
}
