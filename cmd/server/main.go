package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/village360/village360-backend/internal/config"
	"github.com/village360/village360-backend/internal/database"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/handlers"
	"github.com/village360/village360-backend/internal/logging"
	"github.com/village360/village360-backend/internal/middleware"
	"github.com/village360/village360-backend/internal/routes"
	"github.com/village360/village360-backend/internal/services"
	"github.com/village360/village360-backend/internal/store"
	"gorm.io/gorm"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Persistence gateway: live Postgres, or the fixed in-memory dataset
	// when the database is unreachable at startup.
	var st store.Store
	var db *gorm.DB
	var dbLogHandler *logging.DBHandler

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Warn("database unreachable, running in mock mode", "error", err)
		mem := store.NewMemory()
		if err := mem.SeedSampleData(); err != nil {
			slog.Error("failed to seed mock dataset", "error", err)
			os.Exit(1)
		}
		st = mem
	} else {
		if err := database.Migrate(db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		st = store.NewGorm(db)

		// ERROR+ logs additionally land in the system_logs table
		dbLogHandler = logging.NewDBHandler(db)
		slog.SetDefault(slog.New(logging.NewTeeHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			dbLogHandler,
		)))
	}

	// Log cleanup (live mode only)
	cleanupDone := make(chan struct{})
	if db != nil {
		logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)
	}

	// Services
	authService := services.NewAuthService(st, cfg)
	villageService := services.NewVillageService(st)
	projectService := services.NewProjectService(st)
	reportService := services.NewReportService(st)
	amenityService := services.NewAmenityService(st)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	villageHandler := handlers.NewVillageHandler(villageService, projectService, amenityService)
	projectHandler := handlers.NewProjectHandler(projectService, reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(st)
	adminHandler := handlers.NewAdminHandler(st)
	healthHandler := handlers.NewHealthHandler(st)

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
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, st, authHandler, villageHandler, projectHandler,
		reportHandler, dashboardHandler, adminHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "mock_mode", st.MockMode())
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
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

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
