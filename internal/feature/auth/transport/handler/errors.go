package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/transport/http/dto"
)

// StatusFor maps a core error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError serializes err as {"message": ...}.
// Internal errors are logged in full and answered with a generic message.
func WriteError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.AbortWithStatusJSON(status, dto.MessageRes{Message: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, dto.MessageRes{Message: publicMessage(err)})
}

// publicMessage returns the client-facing text for a classified error.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return "Email already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Email or password is invalid"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "Access token invalid or expired"
	case errors.Is(err, domain.ErrForbidden):
		return "Access denied"
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"
	default:
		return "internal server error"
	}
}
