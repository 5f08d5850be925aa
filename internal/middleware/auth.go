package middleware

import (
	"net/http"
	"strings"

	"storedash-be/config"
	"storedash-be/internal/models"
	"storedash-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID     = "userID"
	ContextEmail      = "email"
	ContextRole       = "role"
	ContextLinkedName = "linkedName"
)

// AuthMiddleware validates the bearer access token and stores the caller's
// identity in the gin context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing or malformed authorization header",
			})
			return
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "), cfg.JWTSecret)
		if err != nil || claims.TokenType != utils.TokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_token",
				Message: "Invalid or expired access token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextLinkedName, claims.LinkedName)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin capability before the
// handler runs.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !models.IsAdminRole(c.GetString(ContextRole)) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "forbidden",
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}
