package demo

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations when the server runs as a read-only
// demo. GET, HEAD and OPTIONS always pass.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		m.respondBlocked(c)
	}
}

// respondBlocked sends a 403 in the API's error body shape.
func (m *Middleware) respondBlocked(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"timestamp": time.Now(),
		"status":    http.StatusForbidden,
		"error":     http.StatusText(http.StatusForbidden),
		"message":   "This action is disabled in demo mode",
		"path":      c.Request.URL.Path,
	})
}
