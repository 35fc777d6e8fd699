package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	requestHeadersHeader = "Access-Control-Request-Headers"
	allowHeadersHeader   = "Access-Control-Allow-Headers"
)

// CORS is fully open: any origin is reflected back, credentials included.
// Browsers do not treat "*" as a wildcard on credentialed requests, so the
// preflight echoes whatever headers were asked for.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader(requestHeadersHeader); requested != "" {
				c.Header(allowHeadersHeader, requested)
			}
		}
		handler(c)
	}
}
