package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

type ProblemRepository struct {
	db *gorm.DB
}

// NewProblemRepository creates a new GORM-based problem report repository
func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// Create inserts a problem report; the store issues the integer id.
func (r *ProblemRepository) Create(ctx context.Context, p *entities.ProblemReport) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create problem report: %w", err)
	}
	return nil
}

// GetByID retrieves a problem report by store-issued id
func (r *ProblemRepository) GetByID(ctx context.Context, id int) (*entities.ProblemReport, error) {
	var p entities.ProblemReport

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("problem report %d: %w", id, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch problem report: %w", err)
	}

	return &p, nil
}

// List returns problem reports, high priority first then newest
func (r *ProblemRepository) List(ctx context.Context, status, airport string) ([]entities.ProblemReport, error) {
	q := r.db.WithContext(ctx).Model(&entities.ProblemReport{})

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if airport != "" {
		q = q.Where("LOWER(airport) LIKE ?", "%"+strings.ToLower(airport)+"%")
	}

	var problems []entities.ProblemReport
	err := q.Order("CASE WHEN priority = 'High' THEN 0 ELSE 1 END ASC").
		Order("date DESC").
		Find(&problems).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list problem reports: %w", err)
	}
	return problems, nil
}

// ListByReporter returns the problems filed by one reporter
func (r *ProblemRepository) ListByReporter(ctx context.Context, reporter string) ([]entities.ProblemReport, error) {
	var problems []entities.ProblemReport
	err := r.db.WithContext(ctx).
		Where("reporter = ?", reporter).
		Order("created_at DESC").
		Find(&problems).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list problem reports: %w", err)
	}
	return problems, nil
}

// CountByStatus returns how many problems carry the given status
func (r *ProblemRepository) CountByStatus(ctx context.Context, status constants.ProblemStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ProblemReport{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count problem reports: %w", err)
	}
	return count, nil
}

// Save persists problem report field changes
func (r *ProblemRepository) Save(ctx context.Context, p *entities.ProblemReport) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("failed to update problem report: %w", err)
	}
	return nil
}
