package handlers

import (
	"net/http"

	"storedash-be/config"
	"storedash-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups every endpoint handler the API serves.
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Upload    *UploadHandler
	Users     *UserHandler
	Chat      *ChatHandler
}

// RegisterRoutes mounts the public and JWT-protected API under /api.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers) {
	public := r.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "Store dashboard API is running",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.GetMe)

		protected.GET("/leaderboards", h.Dashboard.GetLeaderboards)
		protected.GET("/people/search", h.Dashboard.SearchPeople)
		protected.GET("/people/:name/details", h.Dashboard.GetPersonDetails)
		protected.GET("/people/:name/call-sheets", h.Dashboard.GetCallSheets)

		protected.GET("/uploads/status", h.Upload.GetStatus)
		protected.POST("/me/push-tokens", h.Users.RegisterPushToken)
		protected.POST("/chat/messages", h.Chat.PostMessage)

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/uploads/preview", h.Upload.Preview)
			admin.POST("/uploads", h.Upload.Process)
			admin.DELETE("/uploads/status", h.Upload.ResetStatus)
			admin.GET("/uploads/:id", h.Upload.GetUpload)

			admin.GET("/users", h.Users.ListUsers)
			admin.POST("/users", h.Users.CreateUser)
			admin.DELETE("/users/:id", h.Users.DeleteUser)
		}
	}
}
