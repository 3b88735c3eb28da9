package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new GORM-based spare parts repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Upsert inserts the part or overwrites the existing row with the same part_id
func (r *InventoryRepository) Upsert(ctx context.Context, part *entities.SparePart) error {
	var existing entities.SparePart
	err := r.db.WithContext(ctx).Where("part_id = ?", part.PartID).First(&existing).Error
	switch {
	case err == nil:
		part.ID = existing.ID
		if err := r.db.WithContext(ctx).Save(part).Error; err != nil {
			return fmt.Errorf("failed to update part: %w", err)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(part).Error; err != nil {
			return fmt.Errorf("failed to create part: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to fetch part: %w", err)
	}
}

// GetByName retrieves the first part matching the name
func (r *InventoryRepository) GetByName(ctx context.Context, name string) (*entities.SparePart, error) {
	var part entities.SparePart

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC").
		First(&part).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("part %s: %w", name, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch part: %w", err)
	}

	return &part, nil
}

// List returns all parts ordered by part id
func (r *InventoryRepository) List(ctx context.Context) ([]entities.SparePart, error) {
	var parts []entities.SparePart
	if err := r.db.WithContext(ctx).Order("part_id ASC").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return parts, nil
}

// ListLowStock recomputes the low-stock set from the full collection on every
// call; an empty collection yields an empty slice.
func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]entities.SparePart, error) {
	var parts []entities.SparePart
	err := r.db.WithContext(ctx).
		Where("quantity <= minimum").
		Order("part_id ASC").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock parts: %w", err)
	}
	return parts, nil
}

// UseParts decrements stock and appends the usage row in one transaction. The
// guard runs inside the transaction so the quantity can never go negative.
func (r *InventoryRepository) UseParts(ctx context.Context, name string, qty int, usage *entities.PartUsage) (*entities.SparePart, error) {
	var part entities.SparePart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", name).Order("created_at ASC").First(&part).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("part %s: %w", name, constants.ErrNotFound)
			}
			return fmt.Errorf("failed to fetch part: %w", err)
		}

		if part.Quantity < qty {
			return fmt.Errorf("only %d %s(s) available: %w", part.Quantity, part.Name, constants.ErrInsufficientStock)
		}

		part.Quantity -= qty
		if err := tx.Save(&part).Error; err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		usage.PartID = part.PartID
		usage.Name = part.Name
		usage.QtyUsed = qty
		if err := tx.Create(usage).Error; err != nil {
			return fmt.Errorf("failed to record usage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &part, nil
}

// ListUsage returns the usage history, newest first
func (r *InventoryRepository) ListUsage(ctx context.Context) ([]entities.PartUsage, error) {
	var usage []entities.PartUsage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to list usage history: %w", err)
	}
	return usage, nil
}

// Delete removes a part by part id
func (r *InventoryRepository) Delete(ctx context.Context, partID string) error {
	res := r.db.WithContext(ctx).Where("part_id = ?", partID).Delete(&entities.SparePart{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete part: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("part %s: %w", partID, constants.ErrNotFound)
	}
	return nil
}
