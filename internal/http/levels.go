package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/flashcards/internal/services"
)

type LevelsController struct {
	levels     LevelService
	flashcards FlashcardService
}

func NewLevelsController(levels LevelService, flashcards FlashcardService) *LevelsController {
	return &LevelsController{levels: levels, flashcards: flashcards}
}

// GET /levels/:id
func (lc *LevelsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	level, err := lc.levels.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get level")
		return
	}
	c.JSON(http.StatusOK, level)
}

// PUT /levels/:id
func (lc *LevelsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateLevelInput
	if !bindJSON(c, &in) {
		return
	}

	level, err := lc.levels.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err, "update level")
		return
	}
	c.JSON(http.StatusOK, level)
}

// Delete removes a level and its flashcards.
// DELETE /levels/:id
func (lc *LevelsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := lc.levels.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete level")
		return
	}
	respondNoContent(c)
}

// GET /levels/:id/flashcards
func (lc *LevelsController) ListFlashcards(c *gin.Context) {
	levelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cards, err := lc.flashcards.ListByLevel(c.Request.Context(), levelID)
	if err != nil {
		respondServiceError(c, err, "list flashcards")
		return
	}
	c.JSON(http.StatusOK, cards)
}

// CreateFlashcard adds a flashcard to the level. The body's levelId must match the path.
// POST /levels/:id/flashcards
func (lc *LevelsController) CreateFlashcard(c *gin.Context) {
	levelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.CreateFlashcardInput
	if !bindJSON(c, &in) {
		return
	}
	if in.LevelID == nil || *in.LevelID != levelID {
		respondBadRequest(c, "Path levelId and body.levelId must match")
		return
	}

	card, err := lc.flashcards.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, "create flashcard")
		return
	}
	respondCreated(c, card)
}
