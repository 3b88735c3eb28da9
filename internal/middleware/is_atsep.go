package middleware

import (
	"net/http"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/constants"
)

// IsAtsepMiddleware gates mission execution surfaces to ATSEP technicians.
func IsAtsepMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims != nil && claims.Role() == constants.RoleAtsep {
				next.ServeHTTP(w, r)
				return
			}
			common.RespondError(w, time.Now(), nil, "ATSEP role required", http.StatusForbidden)
		})
	}
}
