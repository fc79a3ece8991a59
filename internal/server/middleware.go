package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"marketbids/internal/auth"
	"marketbids/services/bids/handler"
	"marketbids/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// StoreTimeoutMiddleware bounds the request context so store calls fail
// instead of hanging when the external store is unreachable.
func StoreTimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AuthMiddleware resolves the bearer token to a user identity and stores it
// on the request context. Identity resolution happens only here; every
// service call downstream receives the caller explicitly.
func AuthMiddleware(sessions auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		userID, err := sessions.Resolve(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "authentication required")
			c.Abort()
			return
		}

		c.Set(handler.IdentityKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
