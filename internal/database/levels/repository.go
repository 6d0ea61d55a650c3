// Package levels provides database operations for course levels.
//
// # Usage
//
//	repo := levels.NewRepository(db)
//	levels, err := repo.GetLevelsByCourse(courseID) // flashcards preloaded, sibling order
package levels

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
)

var updatableColumns = []string{"name", "description", "order_position"}

// Repository handles all level database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new levels repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLevel inserts a level. The course must exist.
func (r *Repository) CreateLevel(level *entities.Level) error {
	return r.db.Omit(clause.Associations).Create(level).Error
}

// GetLevelByID retrieves a level with its flashcards in sibling order.
func (r *Repository) GetLevelByID(id uint) (*entities.Level, error) {
	var level entities.Level
	err := r.db.Preload("Flashcards", database.ByPosition).First(&level, id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// GetLevelsByCourse retrieves a course's levels in sibling order, each with
// its flashcards in sibling order.
func (r *Repository) GetLevelsByCourse(courseID uint) ([]entities.Level, error) {
	var levels []entities.Level
	err := r.db.Preload("Flashcards", database.ByPosition).
		Scopes(database.ByPosition).
		Where("course_id = ?", courseID).
		Find(&levels).Error
	return levels, err
}

// LevelExists reports whether a level with the given ID exists.
func (r *Repository) LevelExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Level{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateLevel writes the level's scalar fields, including zero values and nulls.
func (r *Repository) UpdateLevel(level *entities.Level) error {
	return r.db.Model(level).Select(updatableColumns).Omit(clause.Associations).Updates(level).Error
}

// DeleteLevel removes a level and its flashcards in one transaction.
func (r *Repository) DeleteLevel(id uint) (database.CascadeResult, error) {
	var result database.CascadeResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("level_id = ?", id).Delete(&entities.Flashcard{})
		if res.Error != nil {
			return res.Error
		}
		result.Flashcards = res.RowsAffected

		res = tx.Delete(&entities.Level{}, id)
		if res.Error != nil {
			return res.Error
		}
		result.Levels = res.RowsAffected
		return nil
	})
	if err != nil {
		return database.CascadeResult{}, err
	}
	return result, nil
}
