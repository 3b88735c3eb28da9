package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/models/dtos"
)

// UpsertPart handles POST /api/v1/parts
func (h *Handlers) UpsertPart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpsertPartRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		part, err := h.deps.Services.Inventory.UpsertPart(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to save part", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Part saved", part)
	}
}

// ListParts handles GET /api/v1/parts
func (h *Handlers) ListParts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		parts, err := h.deps.Services.Inventory.ListParts(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list parts", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", parts)
	}
}

// UsePart handles POST /api/v1/parts/use
func (h *Handlers) UsePart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.UsePartRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		part, err := h.deps.Services.Inventory.UsePart(r.Context(), claims.Username(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to use part", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Stock updated", part)
	}
}

// LowStockReport handles GET /api/v1/parts/low-stock
func (h *Handlers) LowStockReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		parts, err := h.deps.Services.Inventory.LowStockReport(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build low-stock report", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", parts)
	}
}

// PartUsageHistory handles GET /api/v1/parts/usage
func (h *Handlers) PartUsageHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		usage, err := h.deps.Services.Inventory.UsageHistory(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list usage history", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", usage)
	}
}

// DeletePart handles DELETE /api/v1/parts/{part_id}
func (h *Handlers) DeletePart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Inventory.DeletePart(r.Context(), chi.URLParam(r, "part_id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete part", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Part deleted", nil)
	}
}
