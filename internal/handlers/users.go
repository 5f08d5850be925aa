package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storedash-be/internal/models"
	"storedash-be/internal/services"

	"github.com/gin-gonic/gin"
)

// UserManager covers account administration and device registration.
type UserManager interface {
	List(ctx context.Context, role string) ([]models.User, error)
	Create(ctx context.Context, role string, req models.CreateUserRequest) (*models.User, error)
	Delete(ctx context.Context, role, id string) error
	RegisterPushToken(ctx context.Context, userID, token string) error
}

type UserHandler struct {
	users UserManager
}

func NewUserHandler(users UserManager) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers godoc
// @Summary List dashboard users
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} models.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.users.List(ctx, me.Role)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a dashboard user
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body models.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.Create(ctx, me.Role, req)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// DeleteUser godoc
// @Summary Delete a dashboard user
// @Tags users
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.users.Delete(ctx, me.Role, c.Param("id")); err != nil {
		userError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterPushToken godoc
// @Summary Register this device for chat push notifications
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body models.RegisterPushTokenRequest true "FCM token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /me/push-tokens [post]
func (h *UserHandler) RegisterPushToken(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}

	var req models.RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.users.RegisterPushToken(ctx, me.UserID, req.Token); err != nil {
		serverError(c, "Failed to register push token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push token registered"})
}

func userError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "forbidden",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrProtectedUser):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "protected_user",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "user_not_found",
			Message: "User not found",
		})
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: err.Error(),
		})
	default:
		serverError(c, "User operation failed", err)
	}
}
