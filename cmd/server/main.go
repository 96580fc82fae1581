package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	stdout := logging.Setup(cfg.AppEnv)

	if cfg.DBDriver != "sqlite" && cfg.DatabaseURL == "" && cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD or DATABASE_URL environment variable is required")
		os.Exit(1)
	}
	if cfg.LLMAPIKey == "" {
		slog.Warn("LLM_API_KEY not set, distress analysis will return fallback results")
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

	// ERROR+ records also go to system_logs
	dbLogHandler := logging.NewDBHandler(db, 5*time.Second)
	logging.Attach(stdout, dbLogHandler)

	// Zone catalog cache
	zoneCache, err := cache.New(cfg)
	if err != nil {
		slog.Error("cache init failed", "type", cfg.CacheType, "error", err)
		os.Exit(1)
	}

	// Services
	sessionStore := services.NewSessionStore(db)
	identityClient := services.NewIdentityClient(cfg.AuthSessionURL, cfg.AuthTimeout)
	authService := services.NewAuthService(db, cfg, sessionStore, identityClient)
	contactService := services.NewContactService(db)
	alertService := services.NewAlertService(db)
	reportService := services.NewReportService(db)
	zoneService := services.NewZoneService(db, zoneCache, cfg.ZoneCacheTTL)
	distressService := services.NewDistressService(cfg)

	// Daily retention sweep
	cleanupDone := make(chan struct{})
	logging.StartCleanup(cleanupDone, map[string]logging.Purger{
		"system_logs":   logging.PurgeLogs(db, cfg.LogRetentionDays),
		"user_sessions": sessionStore.PurgeExpired,
	})

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
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
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, authService, routes.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Auth:      handlers.NewAuthHandler(authService, cfg),
		Emergency: handlers.NewEmergencyHandler(contactService, alertService),
		Community: handlers.NewCommunityHandler(reportService),
		Safety:    handlers.NewSafetyHandler(zoneService),
		FakeCall:  handlers.NewFakeCallHandler(),
		AI:        handlers.NewAIHandler(distressService),
		Admin:     handlers.NewAdminHandler(zoneService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := zoneCache.Close(); err != nil {
		slog.Error("cache close error", "error", err)
	}
	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error(),
			"request_id", c.Locals("requestid"))
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
