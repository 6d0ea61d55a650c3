package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/flashcards/internal/services"
)

type FlashcardsController struct {
	flashcards FlashcardService
}

func NewFlashcardsController(flashcards FlashcardService) *FlashcardsController {
	return &FlashcardsController{flashcards: flashcards}
}

// GET /flashcards/:id
func (fc *FlashcardsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := fc.flashcards.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get flashcard")
		return
	}
	c.JSON(http.StatusOK, card)
}

// PUT /flashcards/:id
func (fc *FlashcardsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateFlashcardInput
	if !bindJSON(c, &in) {
		return
	}

	card, err := fc.flashcards.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err, "update flashcard")
		return
	}
	c.JSON(http.StatusOK, card)
}

// DELETE /flashcards/:id
func (fc *FlashcardsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.flashcards.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete flashcard")
		return
	}
	respondNoContent(c)
}
