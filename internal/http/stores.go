package http

import (
	"context"

	"github.com/mrlokans/flashcards/internal/entities"
	"github.com/mrlokans/flashcards/internal/services"
)

// This file consolidates the service interfaces used by HTTP controllers.
// Each controller depends only on the operations it calls.

// UserService creates and reads users.
type UserService interface {
	Create(ctx context.Context, in services.CreateUserInput) (services.UserResponse, error)
	GetByID(ctx context.Context, id uint) (services.UserResponse, error)
}

// CourseService covers the course resource.
type CourseService interface {
	Create(ctx context.Context, in services.CreateCourseInput) (services.CourseResponse, error)
	ListPublic(ctx context.Context) ([]services.CourseResponse, error)
	GetByID(ctx context.Context, id uint) (services.CourseResponse, error)
	Update(ctx context.Context, id uint, in services.UpdateCourseInput) (services.CourseResponse, error)
	Delete(ctx context.Context, id uint) error
}

// LevelService covers the level resource, including the nested course routes.
type LevelService interface {
	Create(ctx context.Context, in services.CreateLevelInput) (services.LevelResponse, error)
	GetByID(ctx context.Context, id uint) (services.LevelResponse, error)
	ListByCourse(ctx context.Context, courseID uint) ([]services.LevelResponse, error)
	Update(ctx context.Context, id uint, in services.UpdateLevelInput) (services.LevelResponse, error)
	Delete(ctx context.Context, id uint) error
}

// FlashcardService covers the flashcard resource, including the nested level routes.
type FlashcardService interface {
	Create(ctx context.Context, in services.CreateFlashcardInput) (services.FlashcardResponse, error)
	GetByID(ctx context.Context, id uint) (services.FlashcardResponse, error)
	ListByLevel(ctx context.Context, levelID uint) ([]services.FlashcardResponse, error)
	Update(ctx context.Context, id uint, in services.UpdateFlashcardInput) (services.FlashcardResponse, error)
	Delete(ctx context.Context, id uint) error
}

// AuditLog reads recorded change events.
type AuditLog interface {
	Recent(entityType string, limit int) ([]entities.AuditEvent, error)
	History(entityType string, entityID uint) ([]entities.AuditEvent, error)
}
