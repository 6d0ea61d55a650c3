package services

import "github.com/mrlokans/flashcards/internal/entities"

// UserResponse is the public view of a user. The password hash is never exposed.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LevelSummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	OrderPosition *int   `json:"orderPosition"`
}

type CourseResponse struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	Description      *string        `json:"description"`
	TaughtLanguage   string         `json:"taughtLanguage"`
	LearningLanguage string         `json:"learningLanguage"`
	IsPublic         bool           `json:"isPublic"`
	CreatedByUserID  uint           `json:"createdByUserId"`
	Levels           []LevelSummary `json:"levels"`
}

type FlashcardSummary struct {
	ID            uint   `json:"id"`
	SideA         string `json:"sideA"`
	SideB         string `json:"sideB"`
	OrderPosition *int   `json:"orderPosition"`
}

type LevelResponse struct {
	ID            uint               `json:"id"`
	CourseID      uint               `json:"courseId"`
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	OrderPosition *int               `json:"orderPosition"`
	Flashcards    []FlashcardSummary `json:"flashcards"`
}

type FlashcardResponse struct {
	ID              uint    `json:"id"`
	LevelID         uint    `json:"levelId"`
	SideA           string  `json:"sideA"`
	SideB           string  `json:"sideB"`
	ImageURL        *string `json:"imageUrl"`
	AudioURL        *string `json:"audioUrl"`
	ExampleSentence *string `json:"exampleSentence"`
	OrderPosition   *int    `json:"orderPosition"`
}

func toUserResponse(u *entities.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// toCourseResponse expects c.Levels to be loaded in sibling order.
func toCourseResponse(c *entities.Course) CourseResponse {
	levels := make([]LevelSummary, 0, len(c.Levels))
	for _, l := range c.Levels {
		levels = append(levels, LevelSummary{ID: l.ID, Name: l.Name, OrderPosition: l.OrderPosition})
	}
	return CourseResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		TaughtLanguage:   c.TaughtLanguage,
		LearningLanguage: c.LearningLanguage,
		IsPublic:         c.IsPublic,
		CreatedByUserID:  c.CreatedByUserID,
		Levels:           levels,
	}
}

// toLevelResponse expects l.Flashcards to be loaded in sibling order.
func toLevelResponse(l *entities.Level) LevelResponse {
	cards := make([]FlashcardSummary, 0, len(l.Flashcards))
	for _, f := range l.Flashcards {
		cards = append(cards, FlashcardSummary{ID: f.ID, SideA: f.SideA, SideB: f.SideB, OrderPosition: f.OrderPosition})
	}
	return LevelResponse{
		ID:            l.ID,
		CourseID:      l.CourseID,
		Name:          l.Name,
		Description:   l.Description,
		OrderPosition: l.OrderPosition,
		Flashcards:    cards,
	}
}

func toFlashcardResponse(f *entities.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:              f.ID,
		LevelID:         f.LevelID,
		SideA:           f.SideA,
		SideB:           f.SideB,
		ImageURL:        f.ImageURL,
		AudioURL:        f.AudioURL,
		ExampleSentence: f.ExampleSentence,
		OrderPosition:   f.OrderPosition,
	}
}
