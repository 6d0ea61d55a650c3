package courses

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "courses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB), db.DB
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()
	user := &entities.User{Username: "owner", Email: "owner@example.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newCourse(ownerID uint, name string, public bool) *entities.Course {
	return &entities.Course{
		Name:             name,
		Description:      strPtr(name + " description"),
		TaughtLanguage:   "en",
		LearningLanguage: "es",
		IsPublic:         public,
		CreatedByUserID:  ownerID,
	}
}

func TestRepository_CreateCourse(t *testing.T) {
	repo, db := setupTestDB(t)
	owner := seedUser(t, db)

	course := newCourse(owner.ID, "Spanish Basics", false)
	require.NoError(t, repo.CreateCourse(course))
	assert.NotZero(t, course.ID)

	stored, err := repo.GetCourseByID(course.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPublic, "explicit false must not be replaced by a column default")
	assert.Equal(t, owner.ID, stored.CreatedByUserID)
	assert.Empty(t, stored.Levels)
}

func TestRepository_CreateCourse_UnknownOwner(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateCourse(newCourse(4242, "Ghost course", true))
	assert.Error(t, err)
}

func TestRepository_GetCourseByID_LevelsOrdered(t *testing.T) {
	repo, db := setupTestDB(t)
	owner := seedUser(t, db)

	course := newCourse(owner.ID, "Spanish Basics", true)
	require.NoError(t, repo.CreateCourse(course))

	l1 := &entities.Level{CourseID: course.ID, Name: "l1", OrderPosition: intPtr(2)}
	l2 := &entities.Level{CourseID: course.ID, Name: "l2", OrderPosition: intPtr(1)}
	require.NoError(t, db.Create(l1).Error)
	require.NoError(t, db.Create(l2).Error)

	stored, err := repo.GetCourseByID(course.ID)
	require.NoError(t, err)
	require.Len(t, stored.Levels, 2)
	assert.Equal(t, l2.ID, stored.Levels[0].ID)
	assert.Equal(t, l1.ID, stored.Levels[1].ID)
}

func TestRepository_GetCourseByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetCourseByID(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetPublicCourses(t *testing.T) {
	repo, db := setupTestDB(t)
	owner := seedUser(t, db)

	public := newCourse(owner.ID, "Public", true)
	private := newCourse(owner.ID, "Private", false)
	require.NoError(t, repo.CreateCourse(public))
	require.NoError(t, repo.CreateCourse(private))

	courses, err := repo.GetPublicCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, public.ID, courses[0].ID)
}

func TestRepository_CourseExists(t *testing.T) {
	repo, db := setupTestDB(t)
	owner := seedUser(t, db)

	course := newCourse(owner.ID, "Spanish", true)
	require.NoError(t, repo.CreateCourse(course))

	exists, err := repo.CourseExists(course.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CourseExists(course.ID + 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_UpdateCourse(t *testing.T) {
	repo, db := setupTestDB(t)
	owner := seedUser(t, db)

	course := newCourse(owner.ID, "Spanish", true)
	require.NoError(t, repo.CreateCourse(course))

	course.Name = "Spanish II"
	course.Description = nil
	course.IsPublic = false
	require.NoError(t, repo.UpdateCourse(course))

	stored, err := repo.GetCourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spanish II", stored.Name)
	assert.Nil(t, stored.Description)
	assert.False(t, stored.IsPublic)
	assert.Equal(t, "en", stored.TaughtLanguage)
	assert.Equal(t, owner.ID, stored.CreatedByUserID)
}

func TestRepository_DeleteCourse_Cascades(t *testing.T) {
	repo, db := setupTestDB(t)
	owner := seedUser(t, db)

	doomed := newCourse(owner.ID, "Doomed", true)
	survivor := newCourse(owner.ID, "Survivor", true)
	require.NoError(t, repo.CreateCourse(doomed))
	require.NoError(t, repo.CreateCourse(survivor))

	var doomedLevels []uint
	for i := 0; i < 3; i++ {
		level := &entities.Level{CourseID: doomed.ID, Name: "level"}
		require.NoError(t, db.Create(level).Error)
		doomedLevels = append(doomedLevels, level.ID)
		for j := 0; j < 2; j++ {
			require.NoError(t, db.Create(&entities.Flashcard{LevelID: level.ID, SideA: "a", SideB: "b"}).Error)
		}
	}
	keptLevel := &entities.Level{CourseID: survivor.ID, Name: "kept"}
	require.NoError(t, db.Create(keptLevel).Error)
	require.NoError(t, db.Create(&entities.Flashcard{LevelID: keptLevel.ID, SideA: "a", SideB: "b"}).Error)

	result, err := repo.DeleteCourse(doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, database.CascadeResult{Courses: 1, Levels: 3, Flashcards: 6}, result)
	assert.Equal(t, int64(10), result.Total())

	_, err = repo.GetCourseByID(doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var remaining int64
	require.NoError(t, db.Model(&entities.Level{}).Where("id IN ?", doomedLevels).Count(&remaining).Error)
	assert.Zero(t, remaining)
	require.NoError(t, db.Model(&entities.Flashcard{}).Where("level_id IN ?", doomedLevels).Count(&remaining).Error)
	assert.Zero(t, remaining)

	kept, err := repo.GetCourseByID(survivor.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Levels, 1)
	require.NoError(t, db.Model(&entities.Flashcard{}).Where("level_id = ?", keptLevel.ID).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

func TestRepository_DeleteCourse_Missing(t *testing.T) {
	repo, _ := setupTestDB(t)

	result, err := repo.DeleteCourse(77)
	require.NoError(t, err)
	assert.Zero(t, result.Total())
}
