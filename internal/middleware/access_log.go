package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"multivendor/internal/logger"
)

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		ctx := c.Request.Context()
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error(ctx, "request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn(ctx, "request", fields...)
		default:
			logger.Info(ctx, "request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 JSON error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered", logger.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
