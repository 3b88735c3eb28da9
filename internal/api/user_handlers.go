package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/models/dtos"
)

// CreateUser handles POST /api/v1/users
func (h *Handlers) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpsertUserRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		user, err := h.deps.Services.User.CreateUser(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create user", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "User created", user, http.StatusCreated)
	}
}

// ListUsers handles GET /api/v1/users
func (h *Handlers) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		users, err := h.deps.Services.User.ListUsers(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list users", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", users)
	}
}

// UpdateUser handles PUT /api/v1/users/{id}
func (h *Handlers) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpsertUserRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		user, err := h.deps.Services.User.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update user", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "User updated", user)
	}
}

// DeleteUser handles DELETE /api/v1/users/{id}
func (h *Handlers) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.User.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete user", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "User deleted", nil)
	}
}
