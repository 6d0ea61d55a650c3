package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/flashcards/internal/demo"
	"github.com/mrlokans/flashcards/internal/logging"
)

// NewRouter creates and configures the gin engine with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RequestIDMiddleware())
	router.Use(logging.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		respondInternalError(c, fmt.Errorf("panic: %v", recovered), "recovery")
	}))
	router.Use(SecurityHeadersMiddleware())
	router.Use(demo.NewMiddleware(cfg.ReadOnly).Handler())

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method "+c.Request.Method+" not allowed")
	})

	health := NewHealthController(cfg.Database, cfg.Version)
	users := NewUsersController(cfg.Users)
	courses := NewCoursesController(cfg.Courses, cfg.Levels)
	levels := NewLevelsController(cfg.Levels, cfg.Flashcards)
	flashcards := NewFlashcardsController(cfg.Flashcards)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	// Users
	router.POST("/users", users.Create)
	router.GET("/users/:id", users.Get)

	// Courses
	router.GET("/courses", courses.ListPublic)
	router.POST("/courses", courses.Create)
	router.GET("/courses/:id", courses.Get)
	router.PUT("/courses/:id", courses.Update)
	router.DELETE("/courses/:id", courses.Delete)
	router.GET("/courses/:id/levels", courses.ListLevels)
	router.POST("/courses/:id/levels", courses.CreateLevel)

	// Levels
	router.GET("/levels/:id", levels.Get)
	router.PUT("/levels/:id", levels.Update)
	router.DELETE("/levels/:id", levels.Delete)
	router.GET("/levels/:id/flashcards", levels.ListFlashcards)
	router.POST("/levels/:id/flashcards", levels.CreateFlashcard)

	// Flashcards
	router.GET("/flashcards/:id", flashcards.Get)
	router.PUT("/flashcards/:id", flashcards.Update)
	router.DELETE("/flashcards/:id", flashcards.Delete)

	// Audit trail
	if cfg.AuditLog != nil {
		audit := NewAuditController(cfg.AuditLog)
		router.GET("/audit-events", audit.ListEvents)
	}

	return router
}

// NewHandler returns the router wrapped with CORS handling.
func NewHandler(cfg RouterConfig) http.Handler {
	return WithCORS(NewRouter(cfg), cfg.AllowedOrigins)
}
