package middleware

import (
	"net/http"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/constants"
)

// IsChiefMiddleware gates mission assignment, inventory management, and the
// other chief-only surfaces.
func IsChiefMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims != nil && claims.Role() == constants.RoleChief {
				next.ServeHTTP(w, r)
				return
			}
			common.RespondError(w, time.Now(), nil, "Chief of Unit role required", http.StatusForbidden)
		})
	}
}
