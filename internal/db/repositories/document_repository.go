package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new GORM-based document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a document row
func (r *DocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetByID retrieves a document by id
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*entities.Document, error) {
	var doc entities.Document

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("document %s: %w", id, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}

	return &doc, nil
}

// List returns documents, optionally narrowed to one type, newest first
func (r *DocumentRepository) List(ctx context.Context, docType string) ([]entities.Document, error) {
	q := r.db.WithContext(ctx).Model(&entities.Document{})
	if docType != "" {
		q = q.Where("type = ?", docType)
	}

	var docs []entities.Document
	if err := q.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document row by id
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Document{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete document: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("document %s: %w", id, constants.ErrNotFound)
	}
	return nil
}
