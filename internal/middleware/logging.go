package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finbot/internal/logger"
)

const requestIDKey = "requestID"

// RequestLogging tags every request with a generated request ID (echoed in
// the X-Request-ID header) and logs method, path, status, latency and client
// IP once the handler chain finishes. Responses with a 4xx/5xx status are
// logged at warn level.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if status >= 400 {
			logger.Get().Warnw("request", fields...)
			return
		}
		logger.Get().Infow("request", fields...)
	}
}
