package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/models/entities"
)

type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new GORM-based notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a pending hand-off notification
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListPending returns all notifications awaiting an ATSEP decision, oldest first
func (r *NotificationRepository) ListPending(ctx context.Context) ([]entities.Notification, error) {
	var notifications []entities.Notification
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// DeleteByMissionRef removes every notification for the reference and returns
// how many rows were removed. Zero is not an error; resolve is idempotent.
func (r *NotificationRepository) DeleteByMissionRef(ctx context.Context, ref string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("mission_ref = ?", ref).
		Delete(&entities.Notification{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", res.Error)
	}
	return res.RowsAffected, nil
}
