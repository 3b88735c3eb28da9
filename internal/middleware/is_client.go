package middleware

import (
	"net/http"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/constants"
)

// IsClientMiddleware gates problem filing to airport client accounts.
func IsClientMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims != nil && claims.Role() == constants.RoleClient {
				next.ServeHTTP(w, r)
				return
			}
			common.RespondError(w, time.Now(), nil, "Client role required", http.StatusForbidden)
		})
	}
}
