package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// problemDetails represents an RFC 7807 Problem Details response
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Error types
const (
	errorTypeRateLimit = "https://fortuna.app/errors/rate-limit"
	errorTypeNoSession = "https://fortuna.app/errors/no-session"
)

// rateLimitError creates a rate limit exceeded response
func rateLimitError(c echo.Context, retryAfter int) error {
	return c.JSON(http.StatusTooManyRequests, problemDetails{
		Type:     errorTypeRateLimit,
		Title:    "Rate Limit Exceeded",
		Status:   http.StatusTooManyRequests,
		Detail:   fmt.Sprintf("Too many requests. Please retry after %d seconds.", retryAfter),
		Instance: c.Request().URL.Path,
	})
}

// noSessionError is returned when a session-scoped route runs without the session middleware
func noSessionError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, problemDetails{
		Type:     errorTypeNoSession,
		Title:    "Session Missing",
		Status:   http.StatusInternalServerError,
		Detail:   "Request has no session",
		Instance: c.Request().URL.Path,
	})
}
