package middleware

import (
	"time"

	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggingMiddleware logs one line per completed request. Detailed
// logging adds the query string and user agent.
func RequestLoggingMiddleware(detailed bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if logger.Log == nil {
			return
		}
		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("locale", string(GetLocale(c))),
			zap.String("client_ip", c.ClientIP()),
		}
		if detailed {
			fields = append(fields,
				zap.String("query", redactQuery(c)),
				zap.String("user_agent", c.Request.UserAgent()),
			)
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Log.Error("Request completed", fields...)
		case c.Writer.Status() >= 400:
			logger.Log.Warn("Request completed", fields...)
		default:
			logger.Log.Info("Request completed", fields...)
		}
	}
}

// redactQuery hides the access code from logged query strings.
func redactQuery(c *gin.Context) string {
	q := c.Request.URL.Query()
	if q.Has(AccessCodeQuery) {
		q.Set(AccessCodeQuery, "[REDACTED]")
	}
	return q.Encode()
}
