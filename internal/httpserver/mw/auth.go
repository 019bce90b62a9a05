package mw

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/upandey0/bookmarks/internal/auth"
	"github.com/upandey0/bookmarks/internal/logger"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user id set by Auth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Auth rejects requests without a valid access token and stores the
// verified user id in the request context. Tokens are read from the
// x-auth-token header (legacy client) or an Authorization bearer.
func Auth(tokens *auth.TokenService, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				unauthorized(w, "authentication required")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				log.Debug("token rejected", logger.Error(err))
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if t := r.Header.Get("x-auth-token"); t != "" {
		return t
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // nothing to do about a failed error write
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
