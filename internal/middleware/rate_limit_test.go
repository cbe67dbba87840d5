package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	sessionID := uuid.New()

	// First 5 requests should be allowed (burst)
	for i := 0; i < 5; i++ {
		if !rl.Allow(sessionID) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 6th request should be rate limited (exceeded burst)
	if rl.Allow(sessionID) {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentSessions(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	session1 := uuid.New()
	session2 := uuid.New()

	for i := 0; i < 3; i++ {
		if !rl.Allow(session1) {
			t.Errorf("Session1 request %d should be allowed", i+1)
		}
	}

	if rl.Allow(session1) {
		t.Error("Session1 should be rate limited")
	}

	// Session2 should still have its full burst
	for i := 0; i < 3; i++ {
		if !rl.Allow(session2) {
			t.Errorf("Session2 request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiterWithConfig(0, 0)
	defer rl.Stop()

	if rl.requestsPerMinute != DefaultRateLimit || rl.burstSize != DefaultBurstSize {
		t.Errorf("got %d/min burst %d, want defaults", rl.requestsPerMinute, rl.burstSize)
	}

	remaining, _ := rl.GetState(uuid.New())
	if remaining != DefaultBurstSize {
		t.Errorf("remaining for unknown session = %d, want %d", remaining, DefaultBurstSize)
	}
}

func TestRateLimitMiddleware_RequiresSession(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 1)
	defer rl.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets/upload", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	}

	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if handlerCalled {
		t.Error("Handler should not run without a session")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware_RateLimitsSession(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2) // Small burst for testing
	defer rl.Stop()

	sessionID := uuid.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	newContext := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets/upload", nil)
		ctx := context.WithValue(req.Context(), SessionIDKey, sessionID)
		rec := httptest.NewRecorder()
		return e.NewContext(req.WithContext(ctx), rec), rec
	}

	// First 2 requests should succeed (burst)
	for i := 0; i < 2; i++ {
		c, rec := newContext()

		if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
			t.Fatalf("Request %d: Expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "10" {
			t.Errorf("Request %d: X-RateLimit-Limit = %q, want 10", i+1, rec.Header().Get("X-RateLimit-Limit"))
		}
	}

	// 3rd request should be rate limited
	c, rec := newContext()
	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}
