package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/staffing-crm/internal/models"
)

// Connect opens the postgres database at dsn. Unique violations are
// translated to gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := Open(postgres.Open(dsn))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	slog.Info("database connection established")
	return db, nil
}

// Open opens any gorm dialector with the settings the services rely on.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	slog.Info("running migrations")

	err := db.AutoMigrate(
		&models.Vendor{},
		&models.Contact{},
		&models.Resource{},
		&models.JobRequirement{},
		&models.ProcessFlow{},
		&models.ProcessFlowHistory{},
		&models.JobCategory{},
	)
	if err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	return nil
}
