package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionIDKey is the context key for the browser session ID
	SessionIDKey contextKey = "session_id"

	// SessionCookieName is the cookie that carries the session ID
	SessionCookieName = "fortuna_session"
	// SessionHeader lets non-browser clients pass the session ID explicitly
	SessionHeader = "X-Session-ID"
)

// SessionConfig configures the session cookie
type SessionConfig struct {
	TTL    time.Duration
	Secure bool
}

// Session identifies the caller's session from the X-Session-ID header or
// the session cookie, starting a new session when neither holds a valid ID.
// The cookie is refreshed on every request.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, ok := sessionFromRequest(c.Request())
			if !ok {
				sessionID = uuid.New()
				log.Debug().
					Str("session_id", sessionID.String()).
					Str("path", c.Request().URL.Path).
					Msg("Started new session")
			}

			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID.String(),
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Response().Header().Set(SessionHeader, sessionID.String())

			ctx := context.WithValue(c.Request().Context(), SessionIDKey, sessionID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func sessionFromRequest(req *http.Request) (uuid.UUID, bool) {
	if header := req.Header.Get(SessionHeader); header != "" {
		if id, err := uuid.Parse(header); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	if cookie, err := req.Cookie(SessionCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetSessionID extracts the session ID from the echo context
func GetSessionID(c echo.Context) uuid.UUID {
	if id, ok := c.Request().Context().Value(SessionIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
