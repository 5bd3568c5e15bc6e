// Package handler serves the role-gated resources.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Moderator handles GET /api/moderator. Guards run before it.
func Moderator(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Admin or Moderators only can access this route!"})
}

// Admin handles GET /api/admin. Guards run before it.
func Admin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Admin only can access this route!"})
}
