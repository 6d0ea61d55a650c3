package entities

import "time"

// Course is the top-level learning unit. It exclusively owns its levels.
type Course struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `gorm:"size:255;not null" json:"name"`
	Description      *string `gorm:"type:text" json:"description"`
	TaughtLanguage   string  `gorm:"size:64;not null" json:"taughtLanguage"`
	LearningLanguage string  `gorm:"size:64;not null" json:"learningLanguage"`
	IsPublic         bool    `gorm:"index;not null" json:"isPublic"`
	CreatedByUserID  uint    `gorm:"index;not null" json:"createdByUserId"`

	CreatedBy *User   `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT" json:"-"`
	Levels    []Level `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"levels,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}

// Level groups flashcards inside a course. A nil OrderPosition means the
// level is unordered and sorts by ID alone.
type Level struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CourseID      uint    `gorm:"index;not null" json:"courseId"`
	Name          string  `gorm:"size:255;not null" json:"name"`
	Description   *string `gorm:"type:text" json:"description"`
	OrderPosition *int    `json:"orderPosition"`

	Flashcards []Flashcard `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"flashcards,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Level) TableName() string {
	return "levels"
}

type Flashcard struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	LevelID         uint    `gorm:"index;not null" json:"levelId"`
	SideA           string  `gorm:"type:text;not null" json:"sideA"`
	SideB           string  `gorm:"type:text;not null" json:"sideB"`
	ImageURL        *string `gorm:"size:2048" json:"imageUrl"`
	AudioURL        *string `gorm:"size:2048" json:"audioUrl"`
	ExampleSentence *string `gorm:"type:text" json:"exampleSentence"`
	OrderPosition   *int    `json:"orderPosition"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
