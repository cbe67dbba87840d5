package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/config"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/handler"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/repository/memory"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/repository/storage"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/service"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/websocket"
	"github.com/dafibh/fortuna/fortuna-dashboard/web"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Fortuna Dashboard API
// @version 1.0
// @description Session-scoped spending dashboard over uploaded CSV transactions.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize repositories
	datasetRepo := memory.NewDatasetRepository(cfg.SessionTTL)
	defer datasetRepo.Stop()

	var objectRepo storage.DatasetObjectRepository
	if cfg.S3.Enabled() {
		s3Repo, err := storage.NewS3DatasetRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 dataset storage")
		}
		objectRepo = s3Repo
		log.Info().Str("bucket", cfg.S3.Bucket).Str("prefix", cfg.S3.Prefix).Msg("Dataset imports enabled")
	} else {
		log.Info().Msg("S3_BUCKET not set, dataset imports disabled")
	}

	// Initialize WebSocket hub; tabs of an expired session are disconnected
	hub := websocket.NewHub()
	datasetRepo.OnEvict(func(sessionID uuid.UUID) {
		hub.CloseSession(sessionID)
	})

	// Initialize services
	datasetService := service.NewDatasetService(datasetRepo, objectRepo, cfg.MaxUploadBytes)
	datasetService.SetEventPublisher(hub)
	dashboardService := service.NewDashboardService(datasetRepo, cfg.CurrencySymbol, cfg.DefaultRollingWindow)
	exportService := service.NewExportService(dashboardService)

	// Upload rate limiter
	uploadLimiter := middleware.NewRateLimiterWithConfig(cfg.UploadRateLimit, cfg.UploadBurst)
	defer uploadLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Dataset:   handler.NewDatasetHandler(datasetService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Export:    handler.NewExportHandler(exportService),
		WebSocket: handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader, echo.HeaderContentDisposition, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like); swagger UI ships inline scripts
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/swagger/")
		},
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'; connect-src 'self' ws: wss:",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Dashboard page
	web.Register(e)

	// Register API routes
	handler.RegisterRoutes(e, handler.RouteConfig{
		Session: middleware.SessionConfig{
			TTL:    cfg.SessionTTL,
			Secure: cfg.IsProduction(),
		},
		UploadLimiter: uploadLimiter,
		Servers: []handler.Server{
			{URL: "http://localhost:" + cfg.Port + "/api/v1", Description: "Local"},
		},
	}, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
