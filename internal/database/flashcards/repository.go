// Package flashcards provides database operations for flashcards.
package flashcards

import (
	"gorm.io/gorm"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
)

var updatableColumns = []string{"side_a", "side_b", "image_url", "audio_url", "example_sentence", "order_position"}

// Repository handles all flashcard database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new flashcards repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateFlashcard inserts a flashcard. The level must exist.
func (r *Repository) CreateFlashcard(card *entities.Flashcard) error {
	return r.db.Create(card).Error
}

// GetFlashcardByID retrieves a single flashcard.
func (r *Repository) GetFlashcardByID(id uint) (*entities.Flashcard, error) {
	var card entities.Flashcard
	if err := r.db.First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// GetFlashcardsByLevel retrieves a level's flashcards in sibling order.
func (r *Repository) GetFlashcardsByLevel(levelID uint) ([]entities.Flashcard, error) {
	var cards []entities.Flashcard
	err := r.db.Scopes(database.ByPosition).
		Where("level_id = ?", levelID).
		Find(&cards).Error
	return cards, err
}

func (r *Repository) FlashcardExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Flashcard{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateFlashcard writes the flashcard's content fields, including nulls.
func (r *Repository) UpdateFlashcard(card *entities.Flashcard) error {
	return r.db.Model(card).Select(updatableColumns).Updates(card).Error
}

// DeleteFlashcard removes a flashcard and reports how many rows were deleted.
func (r *Repository) DeleteFlashcard(id uint) (int64, error) {
	result := r.db.Delete(&entities.Flashcard{}, id)
	return result.RowsAffected, result.Error
}
