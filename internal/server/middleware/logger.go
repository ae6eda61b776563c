package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys handlers set so the request log can attribute the resolution.
const (
	CtxProvider = "log_provider"
	CtxModel    = "log_model"
	CtxFallback = "log_fallback"
)

// Logger logs request details using Zap. Resolution handlers annotate the
// context with provider/model so every request line is attributable to the
// model it served.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
		}

		if provider := c.GetString(CtxProvider); provider != "" {
			fields = append(fields,
				zap.String("provider", provider),
				zap.String("model", c.GetString(CtxModel)),
				zap.Bool("fallback", c.GetBool(CtxFallback)),
			)
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		msg := "Request handled"
		if status >= 500 {
			logger.Error(msg, fields...)
		} else if status >= 400 {
			logger.Warn(msg, fields...)
		} else {
			logger.Info(msg, fields...)
		}
	}
}
