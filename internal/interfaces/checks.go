package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/flashcards/internal/audit"
	"github.com/mrlokans/flashcards/internal/database/courses"
	"github.com/mrlokans/flashcards/internal/database/flashcards"
	"github.com/mrlokans/flashcards/internal/database/levels"
	"github.com/mrlokans/flashcards/internal/database/store"
	"github.com/mrlokans/flashcards/internal/database/users"
	"github.com/mrlokans/flashcards/internal/demo"
	"github.com/mrlokans/flashcards/internal/http"
	"github.com/mrlokans/flashcards/internal/scheduler"
	"github.com/mrlokans/flashcards/internal/services"
	"github.com/mrlokans/flashcards/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.UserStore = (*users.Repository)(nil)
var _ services.CourseStore = (*courses.Repository)(nil)
var _ services.LevelStore = (*levels.Repository)(nil)
var _ services.FlashcardStore = (*flashcards.Repository)(nil)

// UnitOfWork implementations
var _ services.UnitOfWork = (*store.Store)(nil)

// =============================================================================
// Services consumed by the HTTP layer
// =============================================================================

var _ http.UserService = (*services.UserService)(nil)
var _ http.CourseService = (*services.CourseService)(nil)
var _ http.LevelService = (*services.LevelService)(nil)
var _ http.FlashcardService = (*services.FlashcardService)(nil)

// =============================================================================
// Demo seeding
// =============================================================================

var _ demo.UserCreator = (*services.UserService)(nil)
var _ demo.CourseCreator = (*services.CourseService)(nil)
var _ demo.LevelCreator = (*services.LevelService)(nil)
var _ demo.FlashcardCreator = (*services.FlashcardService)(nil)

// =============================================================================
// Audit trail
// =============================================================================

var _ services.Auditor = (*audit.Service)(nil)
var _ http.AuditLog = (*audit.Service)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)

// AuditCleanupRunner implementations
var _ scheduler.AuditCleanupRunner = (*tasks.Client)(nil)
var _ scheduler.AuditCleanupRunner = scheduler.DirectCleanup{}
