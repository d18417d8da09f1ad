// Package middleware holds gin middleware shared by every route.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dividend_backend/internal/platform/logger"
)

// HeaderRequestID carries the request identifier in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestLogger tags each request with an ID, stores a request-scoped logger
// in the request context and logs the outcome once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)

		l := slog.Default().With(slog.String("request_id", requestID))
		c.Request = c.Request.WithContext(logger.ToContext(c.Request.Context(), l))

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		// The auth middleware may have replaced the logger with one carrying the user.
		l = logger.FromContext(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			l.Error("request completed", attrs...)
		case c.Writer.Status() >= 400:
			l.Warn("request completed", attrs...)
		default:
			l.Info("request completed", attrs...)
		}
	}
}
