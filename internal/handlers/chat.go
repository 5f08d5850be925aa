package handlers

import (
	"context"
	"net/http"
	"time"

	"storedash-be/internal/models"

	"github.com/gin-gonic/gin"
)

type ChatPoster interface {
	PostMessage(ctx context.Context, sender *models.User, req models.PostChatMessageRequest) (*models.ChatMessage, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type ChatHandler struct {
	chat  ChatPoster
	users UserFinder
}

func NewChatHandler(chat ChatPoster, users UserFinder) *ChatHandler {
	return &ChatHandler{chat: chat, users: users}
}

// PostMessage godoc
// @Summary Post a chat message
// @Description Stores the message and pushes a notification to the DM recipient and mentioned users
// @Tags chat
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body models.PostChatMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /chat/messages [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}

	var req models.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}
	if req.Channel == "" {
		req.Channel = "general"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	sender, err := h.users.FindByID(ctx, me.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "User not found",
		})
		return
	}

	msg, err := h.chat.PostMessage(ctx, sender, req)
	if err != nil {
		serverError(c, "Failed to post message", err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
