package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
)

// CreateMission handles POST /api/v1/missions
func (h *Handlers) CreateMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateMissionRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		mission, err := h.deps.Services.Mission.CreateMission(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create mission", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Mission created", mission, http.StatusCreated)
	}
}

// ListMissions handles GET /api/v1/missions
func (h *Handlers) ListMissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := repositories.MissionFilter{
			Airport:    r.URL.Query().Get("airport"),
			Personnel:  r.URL.Query().Get("personnel"),
			Status:     r.URL.Query().Get("status"),
			Assignment: r.URL.Query().Get("assignment"),
		}

		missions, err := h.deps.Services.Mission.ListMissions(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list missions", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", missions)
	}
}

// GetMission handles GET /api/v1/missions/{ref}
func (h *Handlers) GetMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		mission, err := h.deps.Services.Mission.GetMission(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch mission", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", mission)
	}
}

// UpdateMission handles PUT /api/v1/missions/{ref}
func (h *Handlers) UpdateMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateMissionRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		mission, err := h.deps.Services.Mission.UpdateMission(r.Context(), chi.URLParam(r, "ref"), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update mission", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Mission updated", mission)
	}
}

// UpdateMissionStatus handles PATCH /api/v1/missions/{ref}/status
func (h *Handlers) UpdateMissionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateMissionStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		mission, err := h.deps.Services.Mission.UpdateStatus(r.Context(), chi.URLParam(r, "ref"), req.Status)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update status", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Status updated", mission)
	}
}

// DeleteMission handles DELETE /api/v1/missions/{ref}
func (h *Handlers) DeleteMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Mission.DeleteMission(r.Context(), chi.URLParam(r, "ref")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete mission", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Mission deleted", nil)
	}
}

// ListNotifications handles GET /api/v1/notifications
func (h *Handlers) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		notifications, err := h.deps.Services.Mission.ListNotifications(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list notifications", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", notifications)
	}
}

// ResolveNotification handles POST /api/v1/notifications/{ref}/resolve
func (h *Handlers) ResolveNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ResolveNotificationRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		mission, err := h.deps.Services.Mission.ResolveNotification(r.Context(), chi.URLParam(r, "ref"), req.Decision)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to resolve notification", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Assignment recorded", mission)
	}
}

// ChiefDashboard handles GET /api/v1/dashboard/chief
func (h *Handlers) ChiefDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		dash, err := h.deps.Services.Mission.ChiefDashboard(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build dashboard", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", dash)
	}
}

// AtsepDashboard handles GET /api/v1/dashboard/atsep
func (h *Handlers) AtsepDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		dash, err := h.deps.Services.Mission.AtsepDashboard(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build dashboard", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", dash)
	}
}

// DroneBoard handles GET /api/v1/drones
func (h *Handlers) DroneBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		board, err := h.deps.Services.Mission.DroneBoard(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build drone board", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", board)
	}
}
