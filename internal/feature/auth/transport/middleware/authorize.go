// Package middleware provides gin guards for the auth feature.
package middleware

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// RequireRole returns a middleware that admits only users whose current role is in policy.
// It must run after jwtmw.AuthRequired. The user is looked up on every request.
func RequireRole(users usecase.RoleLookup, policy usecase.RolePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := jwtmw.UserIDFrom(c)
		if !ok {
			handler.WriteError(c, domain.ErrUnauthenticated)
			return
		}

		if _, err := usecase.Authorize(c.Request.Context(), users, policy, userID); err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				slog.Warn("access denied", "user_id", userID, "path", c.FullPath(), "remote_addr", c.ClientIP())
			}
			handler.WriteError(c, err)
			return
		}
		c.Next()
	}
}
