package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"multivendor/internal/logger"
	"multivendor/internal/models"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		logger.Error(c.Request.Context(), "panic recovered", logger.String("route", route), logger.Any("panic", r))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// routeContext tags the request context with the route for every later log line.
func routeContext(c *gin.Context, route string) context.Context {
	ctx := logger.WithFields(c.Request.Context(), logger.String("route", route))
	c.Request = c.Request.WithContext(ctx)
	return ctx
}

// respondWithError writes {"error": message} and, when err is set, the
// underlying details: field errors for validation failures, the raw message
// otherwise.
func respondWithError(c *gin.Context, status int, message string, err error) {
	fields := []logger.Field{logger.Int("status", status), logger.String("message", message)}
	if err != nil {
		fields = append(fields, logger.ErrorF(err))
	}
	logger.Warn(c.Request.Context(), "returning error", fields...)

	body := gin.H{"error": message}
	if ve, ok := models.AsValidationError(err); ok {
		body["details"] = ve.Fields
	} else if err != nil && err.Error() != message {
		body["details"] = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

func respondBindError(c *gin.Context, err error) {
	respondWithError(c, http.StatusBadRequest, "invalid body", err)
}
