package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

type CertificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new GORM-based certificate repository
func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create inserts a certificate row
func (r *CertificateRepository) Create(ctx context.Context, cert *entities.Certificate) error {
	if err := r.db.WithContext(ctx).Create(cert).Error; err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

// GetByID retrieves a certificate by id
func (r *CertificateRepository) GetByID(ctx context.Context, id string) (*entities.Certificate, error) {
	var cert entities.Certificate

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("certificate %s: %w", id, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch certificate: %w", err)
	}

	return &cert, nil
}

// List returns all certificates, newest acquisition first
func (r *CertificateRepository) List(ctx context.Context) ([]entities.Certificate, error) {
	var certs []entities.Certificate
	if err := r.db.WithContext(ctx).Order("date_acquisition DESC").Find(&certs).Error; err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certs, nil
}
