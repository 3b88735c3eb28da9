package api

import (
	"net/http"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/models/dtos"
)

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			common.RespondError(w, initTime, nil, "Malformed request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Auth.Login(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Login failed", statusFromError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Login successful", resp)
	}
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		h.deps.Services.Auth.Logout(claims.SessionID())
		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}

// Me handles GET /api/v1/auth/me
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		common.RespondSuccess(w, initTime, "", map[string]string{
			"username": claims.Username(),
			"role":     string(claims.Role()),
			"name":     claims.DisplayName(),
		})
	}
}
