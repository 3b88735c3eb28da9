package db

import (
	"fmt"

	"aeromaint/opsdesk/internal/models/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN keeps every collection in process memory; state is lost on
// restart. The shared cache makes the one in-memory database visible to all
// pooled connections.
const DefaultDSN = "file::memory:?cache=shared"

var DB *gorm.DB

// Init opens the store and migrates every collection.
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	DB = db
	return db, nil
}

// Migrate creates the schema for all entity collections.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entities.Mission{},
		&entities.Notification{},
		&entities.MissionReport{},
		&entities.ProblemReport{},
		&entities.SparePart{},
		&entities.PartUsage{},
		&entities.MaintenanceRecord{},
		&entities.Certificate{},
		&entities.Document{},
		&entities.Account{},
		&entities.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

// Ping verifies the underlying connection for the health check.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
