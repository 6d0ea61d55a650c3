// Package demo provides sample content and a read-only demo mode.
package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/services"
)

const (
	// DemoUsername owns every seeded course.
	DemoUsername = "demo"
	DemoEmail    = "demo@example.com"
)

type UserCreator interface {
	Create(ctx context.Context, in services.CreateUserInput) (services.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (services.UserResponse, error)
}

type CourseCreator interface {
	Create(ctx context.Context, in services.CreateCourseInput) (services.CourseResponse, error)
}

type LevelCreator interface {
	Create(ctx context.Context, in services.CreateLevelInput) (services.LevelResponse, error)
}

type FlashcardCreator interface {
	Create(ctx context.Context, in services.CreateFlashcardInput) (services.FlashcardResponse, error)
}

// Seeder writes the demo catalogue through the regular services, so the
// same validation and audit trail apply.
type Seeder struct {
	Users      UserCreator
	Courses    CourseCreator
	Levels     LevelCreator
	Flashcards FlashcardCreator
}

// SeedResult reports what a Seed call wrote.
type SeedResult struct {
	UserID     uint
	Skipped    bool
	Courses    int
	Levels     int
	Flashcards int
}

type card struct {
	sideA, sideB, example string
}

type level struct {
	name  string
	cards []card
}

type course struct {
	name, description string
	taught, learning  string
	levels            []level
}

var catalogue = []course{
	{
		name:        "Spanish Basics",
		description: "Learn fundamental Spanish phrases and vocabulary",
		taught:      "es",
		learning:    "en",
		levels: []level{{
			name: "Greetings",
			cards: []card{
				{"Hello", "Hola", "Hola, ¿cómo estás?"},
				{"Goodbye", "Adiós", "¡Adiós, hasta luego!"},
			},
		}},
	},
	{
		name:        "French Essentials",
		description: "Essential French words and phrases for beginners",
		taught:      "fr",
		learning:    "en",
		levels: []level{{
			name: "Basic Phrases",
			cards: []card{
				{"Thank you", "Merci", "Merci beaucoup!"},
			},
		}},
	},
}

// Seed creates the demo user and its public courses. It is a no-op when the
// demo user already exists.
func (s *Seeder) Seed(ctx context.Context, password string) (SeedResult, error) {
	existing, err := s.Users.GetByUsername(ctx, DemoUsername)
	if err == nil {
		logrus.WithField("user_id", existing.ID).Info("Demo data already present, skipping")
		return SeedResult{UserID: existing.ID, Skipped: true}, nil
	}
	if !errors.Is(err, services.ErrNotFound) {
		return SeedResult{}, fmt.Errorf("look up demo user: %w", err)
	}

	user, err := s.Users.Create(ctx, services.CreateUserInput{
		Username: DemoUsername,
		Email:    DemoEmail,
		Password: password,
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("create demo user: %w", err)
	}

	result := SeedResult{UserID: user.ID}
	public := true
	for _, c := range catalogue {
		description := c.description
		created, err := s.Courses.Create(ctx, services.CreateCourseInput{
			Name:             c.name,
			Description:      &description,
			TaughtLanguage:   c.taught,
			LearningLanguage: c.learning,
			IsPublic:         &public,
			CreatedByUserID:  &user.ID,
		})
		if err != nil {
			return result, fmt.Errorf("create course %q: %w", c.name, err)
		}
		result.Courses++

		for i, l := range c.levels {
			position := i + 1
			lvl, err := s.Levels.Create(ctx, services.CreateLevelInput{
				CourseID:      &created.ID,
				Name:          l.name,
				OrderPosition: &position,
			})
			if err != nil {
				return result, fmt.Errorf("create level %q: %w", l.name, err)
			}
			result.Levels++

			for j, fc := range l.cards {
				position := j + 1
				example := fc.example
				_, err := s.Flashcards.Create(ctx, services.CreateFlashcardInput{
					LevelID:         &lvl.ID,
					SideA:           fc.sideA,
					SideB:           fc.sideB,
					ExampleSentence: &example,
					OrderPosition:   &position,
				})
				if err != nil {
					return result, fmt.Errorf("create flashcard %q: %w", fc.sideA, err)
				}
				result.Flashcards++
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"courses":    result.Courses,
		"levels":     result.Levels,
		"flashcards": result.Flashcards,
	}).Info("Demo data seeded")
	return result, nil
}
