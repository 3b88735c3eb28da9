package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/models/entities"
)

// MaintenanceService appends to and reads the shared maintenance log.
type MaintenanceService struct {
	records *repositories.MaintenanceRepository
}

func NewMaintenanceService(records *repositories.MaintenanceRepository) *MaintenanceService {
	return &MaintenanceService{records: records}
}

// CreateRecord appends a maintenance entry. Equipment, type, and date are the
// minimum any entry carries; flow-specific fields may stay empty.
func (s *MaintenanceService) CreateRecord(ctx context.Context, technician string, req dtos.CreateMaintenanceRequest) (*entities.MaintenanceRecord, error) {
	if req.Equipment == "" || req.Type == "" || req.Date == "" {
		return nil, fmt.Errorf("equipment, type and date are required: %w", constants.ErrValidation)
	}

	record := &entities.MaintenanceRecord{
		ID:          uuid.New().String(),
		Equipment:   req.Equipment,
		Type:        req.Type,
		Date:        req.Date,
		Technician:  req.Technician,
		Status:      req.Status,
		NextDate:    req.NextDate,
		PartsChange: req.PartsChange,
		Description: req.Description,
		Findings:    req.Findings,
		Actions:     req.Actions,
	}
	if record.Technician == "" {
		record.Technician = technician
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListRecords returns the shared log, newest first.
func (s *MaintenanceService) ListRecords(ctx context.Context) ([]entities.MaintenanceRecord, error) {
	return s.records.List(ctx)
}
