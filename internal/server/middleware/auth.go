// Package middleware contains the HTTP middleware of the admin API.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thaedal/thaedal-admin/internal/server/jwt"
	"github.com/thaedal/thaedal-admin/pkg/api"
)

type contextKey string

// Context keys populated by Auth.
const (
	AdminIDKey    contextKey = "admin_id"
	AdminNameKey  contextKey = "admin_name"
	AdminEmailKey contextKey = "admin_email"
)

// Auth validates the bearer token and puts the admin identity into the
// request context. Requests without a valid token get a 401 with the
// standard error body.
func Auth(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid authorization header format")
				unauthorized(w, "invalid token format")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.Subject)
			ctx = context.WithValue(ctx, AdminNameKey, claims.Name)
			ctx = context.WithValue(ctx, AdminEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "unauthorized", Message: message})
}

// AdminID returns the authenticated admin id from the context.
func AdminID(ctx context.Context) string {
	id, _ := ctx.Value(AdminIDKey).(string)
	return id
}
