package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/notulen-team/e-notulen/pkg/validator"

	"github.com/notulen-team/e-notulen/internal/adapter/handler"
	"github.com/notulen-team/e-notulen/internal/adapter/repository"
	"github.com/notulen-team/e-notulen/internal/infrastructure/cache"
	"github.com/notulen-team/e-notulen/internal/infrastructure/storage"
	aiuse "github.com/notulen-team/e-notulen/internal/usecase/ai"
	"github.com/notulen-team/e-notulen/internal/usecase/minutes"
	"github.com/notulen-team/e-notulen/internal/usecase/sheets"
	pkgai "github.com/notulen-team/e-notulen/pkg/ai"
	"github.com/notulen-team/e-notulen/pkg/config"
)

// @title           e-Notulen API
// @version         1.0
// @description     API for digital meeting minutes with PDF export, spreadsheet sync and AI summarization

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	store := cache.NewRedisStore(redisClient)

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(store, logger)
	settingsRepo := repository.NewSettingsRepository(store)

	// Seed the webhook URL from the environment on first start only; a URL
	// already configured through the API wins.
	if cfg.Sheets.WebhookURL != "" {
		seedWebhookURL(settingsRepo, cfg.Sheets.WebhookURL, logger)
	}

	// Initialize usecases
	log.Println("📝 Initializing minutes service...")
	minutesService := minutes.NewMinutesService(meetingRepo, logger)

	log.Println("📤 Initializing spreadsheet sync service...")
	sheetsService := sheets.NewService(settingsRepo, logger)

	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	aiService := aiuse.NewService(groqClient, logger)

	// Initialize the document archive when configured. PDF export works
	// without it; downloads are just not archived.
	var archive *storage.MinIOClient
	if cfg.Storage.Endpoint != "" {
		log.Println("🗄️  Connecting to document archive...")
		archive, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to document archive: %v", err)
		}
	} else {
		log.Println("🗄️  Document archive disabled (STORAGE_ENDPOINT not set)")
	}

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(minutesService, logger)
	exportHandler := handler.NewExportHandler(minutesService, sheetsService, archive, logger)
	integrationsHandler := handler.NewIntegrationsHandler(settingsRepo, logger)
	aiHandler := handler.NewAIHandler(aiService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, exportHandler, integrationsHandler, aiHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
	log.Println("✅ Server stopped")
}

// seedWebhookURL writes the configured webhook URL only when none is stored yet.
func seedWebhookURL(settings *repository.SettingsRepository, url string, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := settings.GetWebhookURL(ctx)
	if err != nil {
		logger.Warn("sheets.webhook.seed_failed", zap.Error(err))
		return
	}
	if current != "" {
		return
	}
	if err := settings.SetWebhookURL(ctx, url); err != nil {
		logger.Warn("sheets.webhook.seed_failed", zap.Error(err))
		return
	}
	logger.Info("sheets.webhook.seeded")
}
