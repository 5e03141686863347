package middleware

import (
	"errors"
	"net/http"
	"strings"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and attaches identity to context
func Authenticate(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.VerifyToken(parts[1], secret)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpired) {
					logger.Warn("Expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Session expired, please login again")
					return
				}
				logger.Warn("Invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid authentication token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed user id", zap.String("id", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid authentication token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin checks the attached role. Stacks after Authenticate.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleAdmin) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
