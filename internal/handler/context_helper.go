package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-jobs-api/internal/middleware"
	"github.com/noah-isme/student-jobs-api/internal/models"
)

// currentClaims extracts the authenticated user's claims from the context.
func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
