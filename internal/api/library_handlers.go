package api

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
)

// CreateCertificate handles POST /api/v1/certificates (multipart form).
func (h *Handlers) CreateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			common.RespondError(w, initTime, nil, "Malformed multipart body", http.StatusBadRequest)
			return
		}

		var closers []multipart.File
		file, closers := openFormFile(r, "file", closers)
		defer func() {
			for _, f := range closers {
				f.Close()
			}
		}()

		cert, err := h.deps.Services.Certificate.CreateCertificate(
			r.Context(),
			r.FormValue("name"),
			r.FormValue("validation"),
			r.FormValue("acq"),
			r.FormValue("exp"),
			file,
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create certificate", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Certificate created", cert, http.StatusCreated)
	}
}

// ListCertificates handles GET /api/v1/certificates
func (h *Handlers) ListCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		certs, err := h.deps.Services.Certificate.ListCertificates(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list certificates", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", certs)
	}
}

// DownloadCertificate handles GET /api/v1/certificates/{id}/file
func (h *Handlers) DownloadCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		name, info, rc, err := h.deps.Services.Certificate.OpenFile(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to open certificate file", statusFromError(err))
			return
		}
		defer rc.Close()

		streamBlob(w, name, info.ContentType, info.Size, rc)
	}
}

// UploadDocument handles POST /api/v1/documents (multipart form).
func (h *Handlers) UploadDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			common.RespondError(w, initTime, nil, "Malformed multipart body", http.StatusBadRequest)
			return
		}

		var closers []multipart.File
		file, closers := openFormFile(r, "file", closers)
		defer func() {
			for _, f := range closers {
				f.Close()
			}
		}()

		doc, err := h.deps.Services.Document.UploadDocument(
			r.Context(),
			claims.Username(),
			r.FormValue("name"),
			r.FormValue("type"),
			file,
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to upload document", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Document uploaded", doc, http.StatusCreated)
	}
}

// ListDocuments handles GET /api/v1/documents
func (h *Handlers) ListDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		docs, err := h.deps.Services.Document.ListDocuments(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list documents", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", docs)
	}
}

// DownloadDocument handles GET /api/v1/documents/{id}/file
func (h *Handlers) DownloadDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		name, info, rc, err := h.deps.Services.Document.OpenDocument(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to open document", statusFromError(err))
			return
		}
		defer rc.Close()

		streamBlob(w, name, info.ContentType, info.Size, rc)
	}
}

// DeleteDocument handles DELETE /api/v1/documents/{id}
func (h *Handlers) DeleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Document.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete document", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Document deleted", nil)
	}
}
