package handlers

import (
	"log"
	"net/http"

	"storedash-be/internal/middleware"
	"storedash-be/internal/models"
	"storedash-be/internal/processor"

	"github.com/gin-gonic/gin"
)

// caller is the authenticated identity AuthMiddleware put on the context.
type caller struct {
	UserID     string
	Email      string
	Role       string
	LinkedName string
}

func currentCaller(c *gin.Context) (caller, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
		return caller{}, false
	}
	return caller{
		UserID:     userID,
		Email:      c.GetString(middleware.ContextEmail),
		Role:       c.GetString(middleware.ContextRole),
		LinkedName: c.GetString(middleware.ContextLinkedName),
	}, true
}

// periodParam reads ?period=YYYY-MM, defaulting to the current month.
func periodParam(c *gin.Context) (string, bool) {
	period, err := processor.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_period",
			Message: err.Error(),
		})
		return "", false
	}
	return period, true
}

// serverError logs err with the request id and writes a 500 carrying msg.
func serverError(c *gin.Context, msg string, err error) {
	log.Printf("[%s] %s %s: %s: %v", c.GetString(middleware.ContextRequestID), c.Request.Method, c.FullPath(), msg, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "server_error",
		Message: msg + ": " + err.Error(),
	})
}
