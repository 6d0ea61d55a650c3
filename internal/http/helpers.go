package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/logging"
	"github.com/mrlokans/flashcards/internal/services"
)

// --- Response Types ---

// ApiError is the error body of every failed request.
type ApiError struct {
	Timestamp time.Time             `json:"timestamp"`
	Status    int                   `json:"status"`
	Error     string                `json:"error"` // reason phrase
	Message   string                `json:"message"`
	Path      string                `json:"path"`
	Fields    []services.FieldError `json:"fields,omitempty"`
}

// --- Error Response Helpers ---

// respondError sends an ApiError with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, newApiError(c, status, message))
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondInternalError logs the error and sends a generic 500 response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.WithError(err).WithFields(log.Fields{
		"context":    context,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(logging.RequestIDKey),
	}).Error("Internal error")
	respondError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

// respondServiceError maps a service error onto the HTTP status it stands for.
func respondServiceError(c *gin.Context, err error, context string) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &verr):
		body := newApiError(c, http.StatusBadRequest, verr.Error())
		body.Fields = verr.Fields
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
	default:
		respondInternalError(c, err, context)
	}
}

func newApiError(c *gin.Context, status int, message string) ApiError {
	return ApiError{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondNoContent sends an empty 204 response.
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+paramName+": "+strconv.Quote(idStr))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into dst or responds with a 400 error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondBadRequest(c, "malformed request body: "+err.Error())
		return false
	}
	return true
}
