package ratelimiter

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests with 429 once the client IP exceeds the limiter's budget.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		c.Next()
	}
}
