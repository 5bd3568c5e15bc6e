package jwtmw

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

const bearerScheme = "Bearer"

// TokenVerifier resolves an access token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthRequired returns a Gin middleware function that validates access tokens
// and restricts access to authenticated users only.
// It asserts that the token is currently valid, not that the user still exists.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		tokenStr := extractToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token not found"})
			return
		}

		// 2. Verify signature and expiry
		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			slog.Warn("access token rejected", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token invalid or expired"})
			return
		}

		// 3. Attach identity and pass control to the next handler
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserIDFrom returns the user id attached by AuthRequired.
func UserIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// extractToken accepts both the raw token and the "Bearer <token>" form.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, bearerScheme) {
		return strings.TrimSpace(rest)
	}
	if strings.EqualFold(header, bearerScheme) {
		return ""
	}
	return header
}
