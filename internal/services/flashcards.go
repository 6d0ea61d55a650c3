package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/database"
	"github.com/mrlokans/flashcards/internal/entities"
	"github.com/mrlokans/flashcards/internal/optional"
)

type CreateFlashcardInput struct {
	LevelID         *uint   `json:"levelId" validate:"required"`
	SideA           string  `json:"sideA" validate:"notblank"`
	SideB           string  `json:"sideB" validate:"notblank"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,max=2048"`
	AudioURL        *string `json:"audioUrl" validate:"omitempty,max=2048"`
	ExampleSentence *string `json:"exampleSentence"`
	OrderPosition   *int    `json:"orderPosition"`
}

// maxURLLength matches the image_url and audio_url column size.
const maxURLLength = 2048

// UpdateFlashcardInput is a partial update. Sides cannot be cleared; the
// optional fields are cleared by an explicit null.
type UpdateFlashcardInput struct {
	SideA           optional.Value[string] `json:"sideA"`
	SideB           optional.Value[string] `json:"sideB"`
	ImageURL        optional.Value[string] `json:"imageUrl"`
	AudioURL        optional.Value[string] `json:"audioUrl"`
	ExampleSentence optional.Value[string] `json:"exampleSentence"`
	OrderPosition   optional.Value[int]    `json:"orderPosition"`
}

// FlashcardService manages the flashcards of a level.
type FlashcardService struct {
	uow   UnitOfWork
	audit Auditor
}

func NewFlashcardService(uow UnitOfWork, auditor Auditor) *FlashcardService {
	return &FlashcardService{uow: uow, audit: auditorOrNoop(auditor)}
}

// Create attaches a new flashcard to an existing level.
func (s *FlashcardService) Create(ctx context.Context, in CreateFlashcardInput) (FlashcardResponse, error) {
	if err := validateStruct(in); err != nil {
		return FlashcardResponse{}, err
	}

	card := &entities.Flashcard{
		LevelID:         *in.LevelID,
		SideA:           in.SideA,
		SideB:           in.SideB,
		ImageURL:        in.ImageURL,
		AudioURL:        in.AudioURL,
		ExampleSentence: in.ExampleSentence,
		OrderPosition:   in.OrderPosition,
	}

	err := s.uow.InTx(ctx, func(repos Repositories) error {
		exists, err := repos.Levels.LevelExists(card.LevelID)
		if err != nil {
			return fmt.Errorf("failed to check level %d: %w", card.LevelID, err)
		}
		if !exists {
			return notFound(entities.EntityLevel, card.LevelID)
		}
		if err := repos.Flashcards.CreateFlashcard(card); err != nil {
			return fmt.Errorf("failed to create flashcard: %w", err)
		}
		return nil
	})
	if err != nil {
		return FlashcardResponse{}, err
	}

	log.WithFields(log.Fields{"flashcard_id": card.ID, "level_id": card.LevelID}).Info("Flashcard created")
	s.audit.LogCreate(entities.EntityFlashcard, card.ID, card.SideA)
	return toFlashcardResponse(card), nil
}

func (s *FlashcardService) GetByID(ctx context.Context, id uint) (FlashcardResponse, error) {
	var resp FlashcardResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		card, err := repos.Flashcards.GetFlashcardByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityFlashcard, id)
		}
		resp = toFlashcardResponse(card)
		return nil
	})
	return resp, err
}

// Update applies the fields present in the patch. The owning level never changes.
func (s *FlashcardService) Update(ctx context.Context, id uint, in UpdateFlashcardInput) (FlashcardResponse, error) {
	var (
		resp    FlashcardResponse
		changed []string
	)
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		card, err := repos.Flashcards.GetFlashcardByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityFlashcard, id)
		}

		var p patcher
		p.requiredString("sideA", in.SideA, 0, &card.SideA)
		p.requiredString("sideB", in.SideB, 0, &card.SideB)
		p.nullableString("imageUrl", in.ImageURL, maxURLLength, &card.ImageURL)
		p.nullableString("audioUrl", in.AudioURL, maxURLLength, &card.AudioURL)
		p.nullableString("exampleSentence", in.ExampleSentence, 0, &card.ExampleSentence)
		nullable(&p, "orderPosition", in.OrderPosition, &card.OrderPosition)
		if err := p.err(); err != nil {
			return err
		}

		if len(p.changed) > 0 {
			if err := repos.Flashcards.UpdateFlashcard(card); err != nil {
				return fmt.Errorf("failed to update flashcard %d: %w", id, err)
			}
		}
		changed = p.changed
		resp = toFlashcardResponse(card)
		return nil
	})
	if err != nil {
		return FlashcardResponse{}, err
	}

	if len(changed) > 0 {
		log.WithFields(log.Fields{"flashcard_id": id, "fields": changed}).Info("Flashcard updated")
		s.audit.LogUpdate(entities.EntityFlashcard, id, changed)
	}
	return resp, nil
}

func (s *FlashcardService) Delete(ctx context.Context, id uint) error {
	var name string
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		card, err := repos.Flashcards.GetFlashcardByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityFlashcard, id)
		}
		name = card.SideA

		if _, err := repos.Flashcards.DeleteFlashcard(id); err != nil {
			return fmt.Errorf("failed to delete flashcard %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithField("flashcard_id", id).Info("Flashcard deleted")
	s.audit.LogDelete(entities.EntityFlashcard, id, name, database.CascadeResult{Flashcards: 1})
	return nil
}

// ListByLevel returns the level's flashcards in sibling order. A missing
// level is NotFound.
func (s *FlashcardService) ListByLevel(ctx context.Context, levelID uint) ([]FlashcardResponse, error) {
	var out []FlashcardResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		exists, err := repos.Levels.LevelExists(levelID)
		if err != nil {
			return fmt.Errorf("failed to check level %d: %w", levelID, err)
		}
		if !exists {
			return notFound(entities.EntityLevel, levelID)
		}

		cards, err := repos.Flashcards.GetFlashcardsByLevel(levelID)
		if err != nil {
			return fmt.Errorf("failed to list flashcards of level %d: %w", levelID, err)
		}
		out = make([]FlashcardResponse, 0, len(cards))
		for i := range cards {
			out = append(out, toFlashcardResponse(&cards[i]))
		}
		return nil
	})
	return out, err
}
