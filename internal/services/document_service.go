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
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/models/entities"
)

var validDocumentTypes = map[string]bool{
	constants.DocumentTypeMission:   true,
	constants.DocumentTypeChecklist: true,
	constants.DocumentTypeManual:    true,
	constants.DocumentTypeGeneral:   true,
}

// DocumentService manages the downloads area: uploaded templates, manuals,
// and checklists.
type DocumentService struct {
	docs  *repositories.DocumentRepository
	files blob.Store
}

func NewDocumentService(docs *repositories.DocumentRepository, files blob.Store) *DocumentService {
	return &DocumentService{docs: docs, files: files}
}

// UploadDocument stores the file and registers its metadata row.
func (s *DocumentService) UploadDocument(ctx context.Context, uploadedBy, name, docType string, file *FileUpload) (*entities.Document, error) {
	if name == "" || file == nil {
		return nil, fmt.Errorf("name and file are required: %w", constants.ErrValidation)
	}
	if docType == "" {
		docType = constants.DocumentTypeGeneral
	}
	if !validDocumentTypes[docType] {
		return nil, fmt.Errorf("unknown document type %q: %w", docType, constants.ErrValidation)
	}

	doc := &entities.Document{
		ID:         uuid.New().String(),
		Name:       name,
		Type:       docType,
		FileName:   file.Name,
		UploadedBy: uploadedBy,
	}

	key := path.Join("documents", doc.ID, file.Name)
	if _, err := s.files.Put(ctx, key, file.Content, blob.PutOptions{ContentType: file.ContentType}); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	doc.FileKey = key

	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns documents, optionally narrowed to one type.
func (s *DocumentService) ListDocuments(ctx context.Context, docType string) ([]entities.Document, error) {
	return s.docs.List(ctx, docType)
}

// OpenDocument streams a stored document.
func (s *DocumentService) OpenDocument(ctx context.Context, id string) (string, blob.Info, io.ReadCloser, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return "", blob.Info{}, nil, err
	}

	info, rc, err := s.files.Get(ctx, doc.FileKey)
	if err != nil {
		return "", blob.Info{}, nil, fmt.Errorf("failed to open document: %w", err)
	}
	return doc.FileName, info, rc, nil
}

// DeleteDocument removes the metadata row and its stored file.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}
	if doc.FileKey != "" {
		if _, err := s.files.Delete(ctx, doc.FileKey); err != nil {
			logging.Error("failed to delete document blob", "key", doc.FileKey, "error", err)
		}
	}
	return nil
}
