package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/services"
)

const maxUploadBytes = 32 << 20

// SubmitReport handles POST /api/v1/reports. The body is either JSON or a
// multipart form carrying optional flight_profile and report_file attachments.
func (h *Handlers) SubmitReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.SubmitReportRequest
		var flightProfile, reportFile *services.FileUpload
		var closers []multipart.File

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
				common.RespondError(w, initTime, nil, "Malformed multipart body", http.StatusBadRequest)
				return
			}
			req = dtos.SubmitReportRequest{
				MissionRef:      r.FormValue("ref"),
				Airport:         r.FormValue("airport"),
				DateStart:       r.FormValue("date_start"),
				DateFinish:      r.FormValue("date_finish"),
				MissionStatus:   r.FormValue("mission_status"),
				Pilot:           r.FormValue("pilot"),
				DataAnalyst:     r.FormValue("data_analyst"),
				Findings:        r.FormValue("findings"),
				Actions:         r.FormValue("actions"),
				Recommendations: r.FormValue("recommendations"),
			}

			flightProfile, closers = openFormFile(r, "flight_profile", closers)
			reportFile, closers = openFormFile(r, "report_file", closers)
			defer func() {
				for _, f := range closers {
					f.Close()
				}
			}()
		} else {
			if err := decodeJSON(r, &req); err != nil {
				common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
				return
			}
		}

		report, err := h.deps.Services.Report.SubmitReport(r.Context(), claims.Username(), req, flightProfile, reportFile)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to submit report", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Report submitted", report, http.StatusCreated)
	}
}

func openFormFile(r *http.Request, field string, closers []multipart.File) (*services.FileUpload, []multipart.File) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, closers
	}
	return &services.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}, append(closers, file)
}

// ListReports handles GET /api/v1/reports
func (h *Handlers) ListReports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reports, err := h.deps.Services.Report.ListReports(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list reports", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", reports)
	}
}

// ListMyReports handles GET /api/v1/reports/mine
func (h *Handlers) ListMyReports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		reports, err := h.deps.Services.Report.ListMyReports(r.Context(), claims.Username())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list reports", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", reports)
	}
}

// GetReport handles GET /api/v1/reports/{id}
func (h *Handlers) GetReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report, err := h.deps.Services.Report.GetReport(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch report", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", report)
	}
}

// ReviewReport handles POST /api/v1/reports/{id}/review
func (h *Handlers) ReviewReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ReviewReportRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		report, err := h.deps.Services.Report.ReviewReport(r.Context(), chi.URLParam(r, "id"), req.Decision)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to review report", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Review recorded", report)
	}
}

// DownloadReportAttachment handles GET /api/v1/reports/{id}/attachments/{kind}
func (h *Handlers) DownloadReportAttachment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		name, info, rc, err := h.deps.Services.Report.OpenAttachment(
			r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "kind"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to open attachment", statusFromError(err))
			return
		}
		defer rc.Close()

		streamBlob(w, name, info.ContentType, info.Size, rc)
	}
}

// streamBlob writes a stored file as a download response.
func streamBlob(w http.ResponseWriter, name, contentType string, size int64, rc io.Reader) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}
	if _, err := io.Copy(w, rc); err != nil {
		logging.Error("failed to stream blob", "name", name, "error", err)
	}
}
