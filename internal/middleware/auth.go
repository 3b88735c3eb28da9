package middleware

import (
	"net/http"
	"strings"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/constants"
)

// AuthMiddleware validates the bearer token, resolves the live session, and
// stores the caller's claims in the request context.
func AuthMiddleware(tokens *auth.TokenService, sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, nil, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			tokenClaims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			// The token is only as good as the session behind it. Logout
			// deletes the session and the token dies with it.
			session, err := sessions.GetSession(tokenClaims.SessionID)
			if err != nil {
				common.RespondError(w, initTime, nil, "Session expired, please log in again", http.StatusUnauthorized)
				return
			}

			role, err := constants.ParseRole(session.Role)
			if err != nil {
				common.RespondError(w, initTime, nil, "Unknown role on session", http.StatusUnauthorized)
				return
			}

			claims := &auth.SessionClaims{
				UsernameValue:  session.Username,
				RoleValue:      role,
				NameValue:      session.Name,
				SessionIDValue: session.SessionID,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
