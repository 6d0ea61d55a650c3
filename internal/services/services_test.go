package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/database/store"
	"github.com/mrlokans/flashcards/internal/services"
)

type auditCall struct {
	op         string
	entityType string
	entityID   uint
	fields     []string
	removed    database.CascadeResult
}

// recordingAuditor keeps every notification in memory.
type recordingAuditor struct {
	mu    sync.Mutex
	calls []auditCall
}

func (a *recordingAuditor) LogCreate(entityType string, entityID uint, _ string) {
	a.record(auditCall{op: "create", entityType: entityType, entityID: entityID})
}

func (a *recordingAuditor) LogUpdate(entityType string, entityID uint, fields []string) {
	a.record(auditCall{op: "update", entityType: entityType, entityID: entityID, fields: fields})
}

func (a *recordingAuditor) LogDelete(entityType string, entityID uint, _ string, removed database.CascadeResult) {
	a.record(auditCall{op: "delete", entityType: entityType, entityID: entityID, removed: removed})
}

func (a *recordingAuditor) record(c auditCall) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, c)
}

func (a *recordingAuditor) ops() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.calls))
	for _, c := range a.calls {
		out = append(out, c.op+":"+c.entityType)
	}
	return out
}

type fixture struct {
	db         *database.Database
	audit      *recordingAuditor
	users      *services.UserService
	courses    *services.CourseService
	levels     *services.LevelService
	flashcards *services.FlashcardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "services.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	uow := store.New(db.DB)
	rec := &recordingAuditor{}
	return &fixture{
		db:         db,
		audit:      rec,
		users:      services.NewUserService(uow, rec, bcrypt.MinCost),
		courses:    services.NewCourseService(uow, rec),
		levels:     services.NewLevelService(uow, rec),
		flashcards: services.NewFlashcardService(uow, rec),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func boolPtr(b bool) *bool    { return &b }
func uintPtr(v uint) *uint    { return &v }

func (f *fixture) user(t *testing.T, name string) services.UserResponse {
	t.Helper()
	u, err := f.users.Create(context.Background(), services.CreateUserInput{
		Username: name,
		Email:    name + "@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) course(t *testing.T, ownerID uint, name string, public bool) services.CourseResponse {
	t.Helper()
	c, err := f.courses.Create(context.Background(), services.CreateCourseInput{
		Name:             name,
		Description:      strPtr(name + " for beginners"),
		TaughtLanguage:   "en",
		LearningLanguage: "es",
		IsPublic:         boolPtr(public),
		CreatedByUserID:  uintPtr(ownerID),
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) level(t *testing.T, courseID uint, name string, pos *int) services.LevelResponse {
	t.Helper()
	l, err := f.levels.Create(context.Background(), services.CreateLevelInput{
		CourseID:      uintPtr(courseID),
		Name:          name,
		OrderPosition: pos,
	})
	require.NoError(t, err)
	return l
}

func (f *fixture) flashcard(t *testing.T, levelID uint, sideA, sideB string, pos *int) services.FlashcardResponse {
	t.Helper()
	c, err := f.flashcards.Create(context.Background(), services.CreateFlashcardInput{
		LevelID:       uintPtr(levelID),
		SideA:         sideA,
		SideB:         sideB,
		OrderPosition: pos,
	})
	require.NoError(t, err)
	return c
}
