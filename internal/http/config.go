package http

import (
	"github.com/mrlokans/flashcards/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core services
	Users      UserService
	Courses    CourseService
	Levels     LevelService
	Flashcards FlashcardService

	// Audit log reader (optional; routes are skipped when nil)
	AuditLog AuditLog

	// Health check target (optional)
	Database *database.Database

	// CORS allowed origins. Empty disables cross-origin access.
	AllowedOrigins []string

	// ReadOnly rejects every write with 403 (demo mode)
	ReadOnly bool

	// Application info
	Version string
}
