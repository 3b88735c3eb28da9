package api

import (
	"net/http"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/models/dtos"
)

// CreateMaintenanceRecord handles POST /api/v1/maintenance
func (h *Handlers) CreateMaintenanceRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.CreateMaintenanceRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		record, err := h.deps.Services.Maintenance.CreateRecord(r.Context(), claims.DisplayName(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create maintenance record", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Maintenance record created", record, http.StatusCreated)
	}
}

// ListMaintenanceRecords handles GET /api/v1/maintenance
func (h *Handlers) ListMaintenanceRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		records, err := h.deps.Services.Maintenance.ListRecords(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list maintenance records", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", records)
	}
}
