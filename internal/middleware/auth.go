package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oleg-messenger/backend/internal/auth"
)

type contextKey int

const claimsKey contextKey = iota

// Auth rejects requests without a valid bearer token and stores the verified
// claims on the request context. Missing token returns 401, a bad or expired
// token returns 403.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			var tokenStr string
			if strings.HasPrefix(strings.ToLower(header), "bearer ") {
				tokenStr = strings.TrimSpace(header[len("Bearer "):])
			}
			if tokenStr == "" {
				writeAuthError(w, http.StatusUnauthorized, "Access token missing")
				return
			}

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the verified token claims stored by Auth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
