package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/redis/go-redis/v9"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sportmatch/backend/internal/config"
	"github.com/sportmatch/backend/internal/database"
	"github.com/sportmatch/backend/internal/handlers"
	"github.com/sportmatch/backend/internal/logging"
	"github.com/sportmatch/backend/internal/middleware"
	"github.com/sportmatch/backend/internal/realtime"
	"github.com/sportmatch/backend/internal/routes"
	"github.com/sportmatch/backend/internal/security"
	"github.com/sportmatch/backend/internal/services"
	"github.com/sportmatch/backend/internal/storage"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.EncryptionKey == "" {
		slog.Error("ENCRYPTION_KEY environment variable is required")
		os.Exit(1)
	}

	// Message cipher; legacy keys stay valid for decryption after rotation
	encKey, err := config.DecodeEncryptionKey(cfg.EncryptionKey)
	if err != nil {
		slog.Error("invalid ENCRYPTION_KEY", "error", err)
		os.Exit(1)
	}
	legacyKeys, err := config.DecodeEncryptionKeysCSV(cfg.EncryptionLegacyKeys)
	if err != nil {
		slog.Error("invalid ENCRYPTION_LEGACY_KEYS", "error", err)
		os.Exit(1)
	}
	cipher, err := security.NewMessageCipher(encKey, legacyKeys...)
	if err != nil {
		slog.Error("cipher init failed", "error", err)
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Redis is optional; without it realtime events stay process-local
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		slog.Info("redis fan-out enabled", "addr", cfg.RedisAddr)
	}

	hub := realtime.NewHub(rdb)
	go hub.Run()

	// Storage and services
	store := storage.NewService(db)
	authService := services.NewAuthService(store, cfg)
	swipeService := services.NewSwipeService(store, hub)
	chatService := services.NewChatService(store, cipher, hub)
	moderationService := services.NewModerationService(store)
	suggestionService := services.NewSuggestionService(store, cfg.SuggestionRadiusKm, cfg.SuggestionLimit)
	routeService := services.NewRouteService(store)
	profileService := services.NewProfileService(store)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)
	profileHandler := handlers.NewProfileHandler(profileService)
	swipeHandler := handlers.NewSwipeHandler(swipeService)
	chatHandler := handlers.NewChatHandler(chatService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, store)
	routeHandler := handlers.NewRouteHandler(routeService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	wsHandler := handlers.NewWSHandler(hub, cfg)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg,
		authHandler, healthHandler, profileHandler, swipeHandler,
		chatHandler, suggestionHandler, routeHandler, moderationHandler,
		wsHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	hub.Stop()
	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Hide 5xx details from clients
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
