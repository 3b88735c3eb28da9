package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/blob"
	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/entities"
)

// CertificateService manages drone calibration certificates and their files.
type CertificateService struct {
	certs *repositories.CertificateRepository
	files blob.Store
}

func NewCertificateService(certs *repositories.CertificateRepository, files blob.Store) *CertificateService {
	return &CertificateService{certs: certs, files: files}
}

// CreateCertificate registers a certificate, storing the uploaded file when
// one is attached.
func (s *CertificateService) CreateCertificate(
	ctx context.Context,
	name, validation, dateAcquisition, dateExpiration string,
	file *FileUpload,
) (*entities.Certificate, error) {
	if name == "" || dateAcquisition == "" {
		return nil, fmt.Errorf("name and acquisition date are required: %w", constants.ErrValidation)
	}

	cert := &entities.Certificate{
		ID:              uuid.New().String(),
		Name:            name,
		Validation:      validation,
		DateAcquisition: dateAcquisition,
		DateExpiration:  dateExpiration,
	}

	if file != nil {
		key := path.Join("certificates", cert.ID, file.Name)
		if _, err := s.files.Put(ctx, key, file.Content, blob.PutOptions{ContentType: file.ContentType}); err != nil {
			return nil, fmt.Errorf("failed to store certificate file: %w", err)
		}
		cert.FileName = file.Name
		cert.FileKey = key
	}

	if err := s.certs.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// ListCertificates returns all certificates, newest acquisition first.
func (s *CertificateService) ListCertificates(ctx context.Context) ([]entities.Certificate, error) {
	return s.certs.List(ctx)
}

// OpenFile streams a certificate's stored file.
func (s *CertificateService) OpenFile(ctx context.Context, id string) (string, blob.Info, io.ReadCloser, error) {
	cert, err := s.certs.GetByID(ctx, id)
	if err != nil {
		return "", blob.Info{}, nil, err
	}
	if cert.FileKey == "" {
		return "", blob.Info{}, nil, fmt.Errorf("certificate %s has no file: %w", id, constants.ErrNotFound)
	}

	info, rc, err := s.files.Get(ctx, cert.FileKey)
	if err != nil {
		return "", blob.Info{}, nil, fmt.Errorf("failed to open certificate file: %w", err)
	}
	return cert.FileName, info, rc, nil
}
