// @title Store Dashboard API
// @version 1.0
// @description Backend API for the sales and BDC performance dashboard
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storedash-be/config"
	"storedash-be/internal/database"
	"storedash-be/internal/handlers"
	"storedash-be/internal/middleware"
	"storedash-be/internal/repository"
	"storedash-be/internal/services"

	"github.com/gin-gonic/gin"

	_ "storedash-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const staleUploadInterval = 5 * time.Minute

func main() {
	// Load configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	mongodb.EnsureIndexes(indexCtx)
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongodb.Database)
	perfRepo := repository.NewPerformanceRepository(mongodb.Database, cfg.UploadWriteMode)
	uploadRepo := repository.NewUploadRepository(mongodb.Database)
	snapshotRepo := repository.NewSnapshotRepository(mongodb.Database)
	chatRepo := repository.NewChatRepository(mongodb.Database)

	// Initialize services
	var pusher services.Pusher
	if cfg.FirebaseCredentialsFile != "" {
		fcm, err := services.NewFCMPusher(ctx, cfg.FirebaseCredentialsFile, cfg.AppURL)
		if err != nil {
			log.Printf("Push notifications disabled: %v", err)
		} else {
			pusher = fcm
		}
	} else {
		log.Println("FIREBASE_CREDENTIALS_FILE not set, push notifications disabled")
	}

	uploadService := services.NewUploadService(perfRepo, uploadRepo)
	dashboardService := services.NewDashboardService(perfRepo, snapshotRepo, cfg.SnapshotMaxAge)
	userService := services.NewUserService(userRepo, cfg.SuperadminEmail)
	notificationService := services.NewNotificationService(userRepo, chatRepo, pusher)

	// Uploads still "processing" after twice the request timeout never finished.
	services.StartStaleUploadWorker(ctx, staleUploadInterval, 2*cfg.UploadTimeout, uploadRepo)

	// Initialize Gin
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))

	handlers.RegisterRoutes(r, cfg, handlers.Handlers{
		Auth:      handlers.NewAuthHandler(cfg, userRepo),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Upload:    handlers.NewUploadHandler(cfg, uploadService),
		Users:     handlers.NewUserHandler(userService),
		Chat:      handlers.NewChatHandler(notificationService, userRepo),
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("Connected to MongoDB: %s (upload write mode: %s)", cfg.MongoDBDatabase, cfg.UploadWriteMode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("Server shutdown:", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}
}
