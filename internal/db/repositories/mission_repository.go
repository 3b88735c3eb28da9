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

type MissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new GORM-based mission repository
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// MissionFilter narrows List results. Empty fields match everything.
type MissionFilter struct {
	Airport    string
	Personnel  string // matches groupchief, pilot, or data analyst
	Status     string
	Assignment string
}

// Create inserts a mission. A reference collision surfaces as
// constants.ErrDuplicateReference.
func (r *MissionRepository) Create(ctx context.Context, mission *entities.Mission) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Mission{}).
		Where("reference = ?", mission.Reference).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check reference: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("reference %s: %w", mission.Reference, constants.ErrDuplicateReference)
	}

	if err := r.db.WithContext(ctx).Create(mission).Error; err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}
	return nil
}

// GetByReference retrieves a mission by its unique reference
func (r *MissionRepository) GetByReference(ctx context.Context, ref string) (*entities.Mission, error) {
	var mission entities.Mission

	err := r.db.WithContext(ctx).
		Where("reference = ?", ref).
		First(&mission).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mission %s: %w", ref, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch mission: %w", err)
	}

	return &mission, nil
}

// List returns missions matching the filter, newest first
func (r *MissionRepository) List(ctx context.Context, filter MissionFilter) ([]entities.Mission, error) {
	q := r.db.WithContext(ctx).Model(&entities.Mission{})

	if filter.Airport != "" {
		q = q.Where("LOWER(airport) LIKE ?", "%"+strings.ToLower(filter.Airport)+"%")
	}
	if filter.Personnel != "" {
		needle := "%" + strings.ToLower(filter.Personnel) + "%"
		q = q.Where(
			"LOWER(groupchief) LIKE ? OR LOWER(pilot) LIKE ? OR LOWER(data_analyst) LIKE ?",
			needle, needle, needle,
		)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Assignment != "" {
		q = q.Where("assignment = ?", filter.Assignment)
	}

	var missions []entities.Mission
	if err := q.Order("created_at DESC").Find(&missions).Error; err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// Save persists mission field changes
func (r *MissionRepository) Save(ctx context.Context, mission *entities.Mission) error {
	if err := r.db.WithContext(ctx).Save(mission).Error; err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	return nil
}

// Delete removes a mission by reference
func (r *MissionRepository) Delete(ctx context.Context, ref string) error {
	res := r.db.WithContext(ctx).Where("reference = ?", ref).Delete(&entities.Mission{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete mission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mission %s: %w", ref, constants.ErrNotFound)
	}
	return nil
}
