package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"art-auction/utils"
)

const requestIDKey = "request_id"

var errUnauthorized = errors.New("missing or invalid admin token")

// RequestIDMiddleware tags every request with an id for log correlation,
// honoring a caller-supplied X-Request-ID
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = utils.GenerateRequestID()
	}
	c.Set(requestIDKey, id)
	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	})
}

// AdminAuthMiddleware guards admin routes with a static bearer token. An empty
// configured token disables the check, matching the historically open admin
// surface.
func AdminAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) ||
			subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(header, prefix)), []byte(token)) != 1 {
			utils.JSONError(c, http.StatusUnauthorized, errUnauthorized, "unauthorized")
			utils.Warn("AdminAuthMiddleware: rejected request", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(requestIDKey),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
