// Package courses provides database operations for courses, including the
// course -> levels -> flashcards cascade on delete.
//
// # Usage
//
//	repo := courses.NewRepository(db)
//	course, err := repo.GetCourseByID(id) // levels preloaded in sibling order
package courses

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
)

// updatableColumns are written by UpdateCourse. Owner and id never change.
var updatableColumns = []string{"name", "description", "taught_language", "learning_language", "is_public"}

// Repository handles all course database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new courses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateCourse inserts a course without touching its associations.
func (r *Repository) CreateCourse(course *entities.Course) error {
	return r.db.Omit(clause.Associations).Create(course).Error
}

// GetCourseByID retrieves a course with its levels in sibling order.
func (r *Repository) GetCourseByID(id uint) (*entities.Course, error) {
	var course entities.Course
	err := r.db.Preload("Levels", database.ByPosition).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetPublicCourses retrieves all public courses (by id) with their levels in sibling order.
func (r *Repository) GetPublicCourses() ([]entities.Course, error) {
	var courses []entities.Course
	err := r.db.Preload("Levels", database.ByPosition).
		Where("is_public = ?", true).
		Order("id ASC").
		Find(&courses).Error
	return courses, err
}

// CourseExists reports whether a course with the given ID exists.
func (r *Repository) CourseExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Course{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateCourse writes the course's scalar fields, including zero values.
func (r *Repository) UpdateCourse(course *entities.Course) error {
	return r.db.Model(course).Select(updatableColumns).Omit(clause.Associations).Updates(course).Error
}

// DeleteCourse removes a course with all of its levels and their flashcards.
// Descendants are deleted first, in one transaction.
func (r *Repository) DeleteCourse(id uint) (database.CascadeResult, error) {
	var result database.CascadeResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		levelIDs := tx.Model(&entities.Level{}).Select("id").Where("course_id = ?", id)

		res := tx.Where("level_id IN (?)", levelIDs).Delete(&entities.Flashcard{})
		if res.Error != nil {
			return res.Error
		}
		result.Flashcards = res.RowsAffected

		res = tx.Where("course_id = ?", id).Delete(&entities.Level{})
		if res.Error != nil {
			return res.Error
		}
		result.Levels = res.RowsAffected

		res = tx.Delete(&entities.Course{}, id)
		if res.Error != nil {
			return res.Error
		}
		result.Courses = res.RowsAffected
		return nil
	})
	if err != nil {
		return database.CascadeResult{}, err
	}
	return result, nil
}
