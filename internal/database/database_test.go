package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/flashcards/internal/config"
	"github.com/mrlokans/flashcards/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func intPtr(v int) *int { return &v }

func TestNewDatabase_MigratesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"users", "courses", "levels", "flashcards", "audit_events"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "table %s should exist", table)
	}
	assert.NoError(t, db.Ping())
	assert.Equal(t, config.DriverSQLite, db.Driver)
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(config.Database{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("postgres without DSN", func(t *testing.T) {
		_, err := Open(config.Database{Driver: config.DriverPostgres})
		assert.ErrorContains(t, err, "DSN is required")
	})

	t.Run("sqlite without path", func(t *testing.T) {
		_, err := Open(config.Database{Driver: config.DriverSQLite})
		assert.ErrorContains(t, err, "path is required")
	})
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "./a.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("./a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("file:a.db?cache=shared"))
	assert.Equal(t, "a.db?_foreign_keys=off", SQLiteDSN("a.db?_foreign_keys=off"))
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	level := &entities.Level{CourseID: 999, Name: "Orphan"}
	err := db.DB.Create(level).Error
	assert.Error(t, err, "inserting a level for a missing course should violate the foreign key")
}

func TestByPosition(t *testing.T) {
	db := setupTestDB(t)

	user := &entities.User{Username: "ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, db.DB.Create(user).Error)
	course := &entities.Course{Name: "Spanish", TaughtLanguage: "en", LearningLanguage: "es", CreatedByUserID: user.ID}
	require.NoError(t, db.DB.Create(course).Error)

	// Insertion order gives ids 1..5.
	levels := []entities.Level{
		{CourseID: course.ID, Name: "third", OrderPosition: intPtr(2)},
		{CourseID: course.ID, Name: "unpositioned-a"},
		{CourseID: course.ID, Name: "first", OrderPosition: intPtr(1)},
		{CourseID: course.ID, Name: "fourth", OrderPosition: intPtr(2)},
		{CourseID: course.ID, Name: "unpositioned-b"},
	}
	for i := range levels {
		require.NoError(t, db.DB.Create(&levels[i]).Error)
	}

	var got []entities.Level
	require.NoError(t, db.DB.Scopes(ByPosition).Where("course_id = ?", course.ID).Find(&got).Error)

	names := make([]string, len(got))
	for i, l := range got {
		names[i] = l.Name
	}
	assert.Equal(t, []string{"unpositioned-a", "unpositioned-b", "first", "third", "fourth"}, names)
}
