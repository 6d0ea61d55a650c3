package services

import (
	"context"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
)

// UserStore provides persistence for users.
type UserStore interface {
	CreateUser(user *entities.User) error
	GetUserByID(id uint) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
	UserExists(id uint) (bool, error)
	UsernameOrEmailTaken(username, email string) (usernameTaken, emailTaken bool, err error)
}

// CourseStore provides persistence for courses. Reads return levels in
// sibling order.
type CourseStore interface {
	CreateCourse(course *entities.Course) error
	GetCourseByID(id uint) (*entities.Course, error)
	GetPublicCourses() ([]entities.Course, error)
	CourseExists(id uint) (bool, error)
	UpdateCourse(course *entities.Course) error
	DeleteCourse(id uint) (database.CascadeResult, error)
}

// LevelStore provides persistence for levels. Reads return flashcards in
// sibling order.
type LevelStore interface {
	CreateLevel(level *entities.Level) error
	GetLevelByID(id uint) (*entities.Level, error)
	GetLevelsByCourse(courseID uint) ([]entities.Level, error)
	LevelExists(id uint) (bool, error)
	UpdateLevel(level *entities.Level) error
	DeleteLevel(id uint) (database.CascadeResult, error)
}

// FlashcardStore provides persistence for flashcards.
type FlashcardStore interface {
	CreateFlashcard(card *entities.Flashcard) error
	GetFlashcardByID(id uint) (*entities.Flashcard, error)
	GetFlashcardsByLevel(levelID uint) ([]entities.Flashcard, error)
	FlashcardExists(id uint) (bool, error)
	UpdateFlashcard(card *entities.Flashcard) error
	DeleteFlashcard(id uint) (int64, error)
}

// Repositories is the set of stores bound to one unit of work.
type Repositories struct {
	Users      UserStore
	Courses    CourseStore
	Levels     LevelStore
	Flashcards FlashcardStore
}

// UnitOfWork runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(repos Repositories) error) error
}

// Auditor receives change notifications after a unit of work commits.
type Auditor interface {
	LogCreate(entityType string, entityID uint, name string)
	LogUpdate(entityType string, entityID uint, fields []string)
	LogDelete(entityType string, entityID uint, name string, removed database.CascadeResult)
}

type noopAuditor struct{}

func (noopAuditor) LogCreate(string, uint, string)                         {}
func (noopAuditor) LogUpdate(string, uint, []string)                       {}
func (noopAuditor) LogDelete(string, uint, string, database.CascadeResult) {}

func auditorOrNoop(a Auditor) Auditor {
	if a == nil {
		return noopAuditor{}
	}
	return a
}
