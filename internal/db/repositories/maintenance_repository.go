package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/models/entities"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new GORM-based maintenance log repository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create appends a maintenance record to the shared log
func (r *MaintenanceRepository) Create(ctx context.Context, record *entities.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}
	return nil
}

// List returns all maintenance records, newest first
func (r *MaintenanceRepository) List(ctx context.Context) ([]entities.MaintenanceRecord, error) {
	var records []entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}
