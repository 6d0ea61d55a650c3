// Package store binds the entity repositories to a single gorm transaction
// so that a service operation commits or rolls back as a whole.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/flashcards/internal/database/courses"
	"github.com/mrlokans/flashcards/internal/database/flashcards"
	"github.com/mrlokans/flashcards/internal/database/levels"
	"github.com/mrlokans/flashcards/internal/database/users"
	"github.com/mrlokans/flashcards/internal/services"
)

// Store is the gorm-backed unit of work.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// InTx runs fn inside one transaction. fn's error rolls the transaction back
// and is returned unchanged.
func (s *Store) InTx(ctx context.Context, fn func(repos services.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories(tx))
	})
}

// Repositories returns repositories that all use db.
func Repositories(db *gorm.DB) services.Repositories {
	return services.Repositories{
		Users:      users.NewRepository(db),
		Courses:    courses.NewRepository(db),
		Levels:     levels.NewRepository(db),
		Flashcards: flashcards.NewRepository(db),
	}
}
