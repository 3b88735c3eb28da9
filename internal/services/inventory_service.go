package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/models/entities"
)

// InventoryService owns spare-part stock: registration, guarded consumption,
// and the derived low-stock report.
type InventoryService struct {
	parts   *repositories.InventoryRepository
	metrics *metrics.MetricsRegistry
}

func NewInventoryService(parts *repositories.InventoryRepository, metricsReg *metrics.MetricsRegistry) *InventoryService {
	return &InventoryService{parts: parts, metrics: metricsReg}
}

// UpsertPart registers a part or overwrites the entry sharing its part id.
// Quantity and minimum must both be non-negative.
func (s *InventoryService) UpsertPart(ctx context.Context, req dtos.UpsertPartRequest) (*entities.SparePart, error) {
	if req.PartID == "" || req.Name == "" {
		return nil, fmt.Errorf("part_id and name are required: %w", constants.ErrValidation)
	}
	if req.Quantity < 0 || req.Minimum < 0 {
		return nil, fmt.Errorf("qty and min must be non-negative: %w", constants.ErrValidation)
	}

	part := &entities.SparePart{
		ID:          uuid.New().String(),
		PartID:      req.PartID,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Minimum:     req.Minimum,
	}

	if err := s.parts.Upsert(ctx, part); err != nil {
		return nil, err
	}

	s.refreshLowStockGauge(ctx)
	return part, nil
}

// ListParts returns the whole collection.
func (s *InventoryService) ListParts(ctx context.Context) ([]entities.SparePart, error) {
	return s.parts.List(ctx)
}

// UsePart consumes stock by part name. The decrement is guarded; stock can
// never go negative and a failed use changes nothing.
func (s *InventoryService) UsePart(ctx context.Context, user string, req dtos.UsePartRequest) (*entities.SparePart, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", constants.ErrValidation)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("qty must be at least 1: %w", constants.ErrValidation)
	}

	usage := &entities.PartUsage{
		ID:   uuid.New().String(),
		User: user,
		Note: req.Note,
	}

	part, err := s.parts.UseParts(ctx, req.Name, req.Quantity, usage)
	if err != nil {
		return nil, err
	}

	s.metrics.PartsUsedTotal.Add(float64(req.Quantity))
	s.refreshLowStockGauge(ctx)
	return part, nil
}

// LowStockReport returns every part at or below its minimum.
func (s *InventoryService) LowStockReport(ctx context.Context) ([]entities.SparePart, error) {
	return s.parts.ListLowStock(ctx)
}

// UsageHistory returns the consumption log, newest first.
func (s *InventoryService) UsageHistory(ctx context.Context) ([]entities.PartUsage, error) {
	return s.parts.ListUsage(ctx)
}

// DeletePart removes a part by part id.
func (s *InventoryService) DeletePart(ctx context.Context, partID string) error {
	if err := s.parts.Delete(ctx, partID); err != nil {
		return err
	}
	s.refreshLowStockGauge(ctx)
	return nil
}

func (s *InventoryService) refreshLowStockGauge(ctx context.Context) {
	low, err := s.parts.ListLowStock(ctx)
	if err != nil {
		return
	}
	s.metrics.LowStockParts.Set(float64(len(low)))
}
