package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/models/dtos"
)

// CreateProblem handles POST /api/v1/problems
func (h *Handlers) CreateProblem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.CreateProblemRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		problem, err := h.deps.Services.Problem.CreateProblem(r.Context(), claims.Username(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to file problem report", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Problem report filed", problem, http.StatusCreated)
	}
}

// ListProblems handles GET /api/v1/problems
func (h *Handlers) ListProblems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		problems, err := h.deps.Services.Problem.ListProblems(
			r.Context(),
			r.URL.Query().Get("status"),
			r.URL.Query().Get("airport"),
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list problems", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", problems)
	}
}

// ListMyProblems handles GET /api/v1/problems/mine
func (h *Handlers) ListMyProblems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		problems, err := h.deps.Services.Problem.ListMyProblems(r.Context(), claims.Username())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list problems", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", problems)
	}
}

// UpdateProblemStatus handles PATCH /api/v1/problems/{id}/status
func (h *Handlers) UpdateProblemStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Problem id must be an integer", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateProblemStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		problem, err := h.deps.Services.Problem.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update problem", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Problem updated", problem)
	}
}
