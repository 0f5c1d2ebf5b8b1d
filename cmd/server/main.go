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

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/config"
	"github.com/recipeshare/server/internal/handlers"
	"github.com/recipeshare/server/internal/logging"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/routes"
	"github.com/recipeshare/server/internal/seed"
	"github.com/recipeshare/server/internal/services"
	"github.com/recipeshare/server/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Storage gateway
	kv, err := newKV(cfg)
	if err != nil {
		slog.Error("store backend init failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	st := store.New(kv, seed.Dataset)
	slog.Info("store initialized", "backend", cfg.StoreBackend)

	// File log handler (ERROR+ async batch)
	fileLogHandler := logging.NewFileHandler(cfg.LogDir)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		fileLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(cfg.LogDir, cleanupDone)

	// Services
	authService := services.NewAuthService(st)
	categoryService := services.NewCategoryService(st)
	recipeService := services.NewRecipeService(st)
	commentService := services.NewCommentService(st)
	ratingService := services.NewRatingService(st)
	favoriteService := services.NewFavoriteService(st)
	reportService := services.NewReportService(st)
	userService := services.NewUserService(st)
	statsService := services.NewStatsService(st)
	maintenanceService := services.NewMaintenanceService(st)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
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
		ErrorHandler: apierr.Handler,
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
	app.Use(middleware.Credentials(cfg))
	app.Use(middleware.SimNet(cfg))

	// Routes
	routes.Setup(app, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Health:      handlers.NewHealthHandler(st),
		Category:    handlers.NewCategoryHandler(categoryService),
		Recipe:      handlers.NewRecipeHandler(recipeService),
		Comment:     handlers.NewCommentHandler(commentService),
		Rating:      handlers.NewRatingHandler(ratingService),
		Favorite:    handlers.NewFavoriteHandler(favoriteService),
		Report:      handlers.NewReportHandler(reportService),
		User:        handlers.NewUserHandler(userService),
		Stats:       handlers.NewStatsHandler(statsService),
		Maintenance: handlers.NewMaintenanceHandler(maintenanceService),
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

	close(cleanupDone)
	fileLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if closer, ok := kv.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Error("store close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func newKV(cfg *config.Config) (store.KV, error) {
	switch cfg.StoreBackend {
	case "redis":
		return store.NewRedisKV(cfg.RedisURL)
	case "memory":
		return store.NewMemoryKV(), nil
	default:
		return store.NewFileKV(cfg.DataDir)
	}
}
