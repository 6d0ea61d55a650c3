package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/logging"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const maxClientRequestIDLength = 64

// RequestIDMiddleware tags every request with an id, reusing a reasonable
// client-supplied X-Request-ID and generating a nanoid otherwise.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxClientRequestIDLength {
			generated, err := gonanoid.New()
			if err != nil {
				log.WithError(err).Warn("Failed to generate request id")
			}
			id = generated
		}
		if id != "" {
			c.Set(logging.RequestIDKey, id)
			c.Header(RequestIDHeader, id)
		}
		c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to all responses. The API
// only serves JSON, so the content security policy forbids everything.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		c.Next()
	}
}

// WithCORS wraps the handler with CORS handling for the given origins.
// An empty origin list disables cross-origin access.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Requested-With", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         86400,
	}).Handler(h)
}
