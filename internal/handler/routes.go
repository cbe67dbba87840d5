package handler

import (
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the HTTP handlers served under /api/v1
type Handlers struct {
	Dataset   *DatasetHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	WebSocket *WebSocketHandler
}

// RouteConfig carries the middleware settings shared by the API routes
type RouteConfig struct {
	Session       middleware.SessionConfig
	UploadLimiter *middleware.RateLimiter
	Servers       []Server
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, cfg RouteConfig, h Handlers) {
	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", OpenAPI3Handler(cfg.Servers))

	// API version 1, every route is scoped to the caller's session
	api := e.Group("/api/v1")
	api.Use(middleware.Session(cfg.Session))

	// Dataset routes
	datasets := api.Group("/datasets")
	datasets.POST("/upload", h.Dataset.Upload, middleware.RateLimitMiddleware(cfg.UploadLimiter))
	datasets.POST("/import", h.Dataset.Import, middleware.RateLimitMiddleware(cfg.UploadLimiter))
	datasets.POST("/sample", h.Dataset.LoadSample)
	datasets.GET("/current", h.Dataset.GetCurrent)
	datasets.DELETE("/current", h.Dataset.Clear)

	// Dashboard routes
	api.GET("/dashboard", h.Dashboard.GetDashboard)

	// Export routes
	export := api.Group("/export")
	export.GET("/csv", h.Export.ExportCSV)
	export.GET("/xlsx", h.Export.ExportXLSX)

	// WebSocket route
	if h.WebSocket != nil {
		api.GET("/ws", h.WebSocket.HandleWS)
	}
}
