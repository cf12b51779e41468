package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/logger"
)

// RequestLogger writes one structured line per request after the handler
// chain finishes, tiered by response status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Duration("duration", time.Since(start)),
			slog.Int("size_bytes", c.Writer.Size()),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("http server error", fields...)
		case status >= 400:
			log.Warn("http client error", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}
