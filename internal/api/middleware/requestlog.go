package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID returns the ID assigned to the request by RequestLog, or "" when
// the middleware is not installed.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// RequestLog returns Echo middleware that assigns every request an ID, echoes
// it in the X-Request-ID response header and logs one line per request.
// Successful probe and scrape requests are logged at debug level, failed
// probes at warn, other server errors at error.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}

			level := slog.LevelInfo
			probe := isProbe(c.Request().URL.Path)
			switch {
			case probe && status >= 300:
				level = slog.LevelWarn
			case probe:
				level = slog.LevelDebug
			case status >= 500:
				level = slog.LevelError
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

func isProbe(path string) bool {
	_, ok := probePaths[path]
	return ok
}
