package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gracechapel/api/internal/ctxkeys"
	"github.com/gracechapel/api/internal/service"
)

// RequireAuth guards admin endpoints. It extracts a bearer token from the
// Authorization header, verifies it, resolves the principal, and attaches the
// user to the request context. Every failure state maps to a 401 envelope.
func RequireAuth(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "authentication required")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "malformed authorization header")
				return
			}

			user, err := authService.Principal(token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			// Password hash never travels further than the gate
			user.PasswordHash = ""

			ctx := ctxkeys.WithUser(r.Context(), user)
			next(w, r.WithContext(ctx))
		}
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
