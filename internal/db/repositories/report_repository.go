package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new GORM-based mission report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a submitted mission report
func (r *ReportRepository) Create(ctx context.Context, report *entities.MissionReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByMissionRef retrieves the first report filed for a mission reference
func (r *ReportRepository) GetByMissionRef(ctx context.Context, ref string) (*entities.MissionReport, error) {
	var report entities.MissionReport

	err := r.db.WithContext(ctx).
		Where("mission_ref = ?", ref).
		Order("created_at ASC").
		First(&report).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report for mission %s: %w", ref, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	return &report, nil
}

// GetByID retrieves a report by primary key
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*entities.MissionReport, error) {
	var report entities.MissionReport

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %s: %w", id, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	return &report, nil
}

// List returns reports, optionally narrowed to one review status, newest first
func (r *ReportRepository) List(ctx context.Context, status string) ([]entities.MissionReport, error) {
	q := r.db.WithContext(ctx).Model(&entities.MissionReport{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var reports []entities.MissionReport
	if err := q.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ListBySubmitter returns reports filed by one technician, newest first
func (r *ReportRepository) ListBySubmitter(ctx context.Context, username string) ([]entities.MissionReport, error) {
	var reports []entities.MissionReport
	err := r.db.WithContext(ctx).
		Where("submitted_by = ?", username).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// Save persists report field changes
func (r *ReportRepository) Save(ctx context.Context, report *entities.MissionReport) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}
