package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/flashcards/internal/entities"
	"github.com/mrlokans/flashcards/internal/optional"
	"github.com/mrlokans/flashcards/internal/services"
)

func setupLevel(t *testing.T, f *fixture) services.LevelResponse {
	t.Helper()
	owner := f.user(t, "maria")
	c := f.course(t, owner.ID, "Spanish", true)
	return f.level(t, c.ID, "Greetings", nil)
}

func TestFlashcardService_Create(t *testing.T) {
	f := newFixture(t)
	l := setupLevel(t, f)

	card, err := f.flashcards.Create(context.Background(), services.CreateFlashcardInput{
		LevelID:         uintPtr(l.ID),
		SideA:           "Good morning",
		SideB:           "Buenos días",
		ImageURL:        strPtr("https://cdn.example.com/sun.png"),
		ExampleSentence: strPtr("¡Buenos días, señora!"),
		OrderPosition:   intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, l.ID, card.LevelID)
	assert.Equal(t, "Buenos días", card.SideB)
	assert.Nil(t, card.AudioURL)
	require.NotNil(t, card.ImageURL)
	assert.Equal(t, "https://cdn.example.com/sun.png", *card.ImageURL)
}

func TestFlashcardService_Create_UnknownLevel(t *testing.T) {
	f := newFixture(t)

	_, err := f.flashcards.Create(context.Background(), services.CreateFlashcardInput{
		LevelID: uintPtr(31),
		SideA:   "a",
		SideB:   "b",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	var count int64
	require.NoError(t, f.db.DB.Model(&entities.Flashcard{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFlashcardService_Create_Validation(t *testing.T) {
	f := newFixture(t)
	l := setupLevel(t, f)

	tests := []struct {
		name  string
		input services.CreateFlashcardInput
	}{
		{"blank side A", services.CreateFlashcardInput{LevelID: uintPtr(l.ID), SideA: "", SideB: "b"}},
		{"blank side B", services.CreateFlashcardInput{LevelID: uintPtr(l.ID), SideA: "a", SideB: "\t"}},
		{"missing level", services.CreateFlashcardInput{SideA: "a", SideB: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.flashcards.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestFlashcardService_ListByLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := setupLevel(t, f)

	c3 := f.flashcard(t, l.ID, "three", "tres", intPtr(3))
	c1 := f.flashcard(t, l.ID, "one", "uno", intPtr(1))
	cNil := f.flashcard(t, l.ID, "none", "ninguno", nil)
	c1b := f.flashcard(t, l.ID, "one again", "uno otra vez", intPtr(1))

	cards, err := f.flashcards.ListByLevel(ctx, l.ID)
	require.NoError(t, err)
	var ids []uint
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint{cNil.ID, c1.ID, c1b.ID, c3.ID}, ids)

	_, err = f.flashcards.ListByLevel(ctx, l.ID+100)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFlashcardService_Update_SingleField(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := setupLevel(t, f)

	original, err := f.flashcards.Create(ctx, services.CreateFlashcardInput{
		LevelID:         uintPtr(l.ID),
		SideA:           "Cat",
		SideB:           "Gato",
		ImageURL:        strPtr("cat.png"),
		AudioURL:        strPtr("gato.mp3"),
		ExampleSentence: strPtr("El gato duerme."),
		OrderPosition:   intPtr(2),
	})
	require.NoError(t, err)

	_, err = f.flashcards.Update(ctx, original.ID, services.UpdateFlashcardInput{SideB: optional.Of("El gato")})
	require.NoError(t, err)

	got, err := f.flashcards.GetByID(ctx, original.ID)
	require.NoError(t, err)
	expected := original
	expected.SideB = "El gato"
	assert.Equal(t, expected, got)
}

func TestFlashcardService_Update_ClearAndReject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := setupLevel(t, f)
	card := f.flashcard(t, l.ID, "Dog", "Perro", intPtr(1))

	got, err := f.flashcards.Update(ctx, card.ID, services.UpdateFlashcardInput{
		OrderPosition: optional.Null[int](),
		AudioURL:      optional.Of("perro.mp3"),
	})
	require.NoError(t, err)
	assert.Nil(t, got.OrderPosition)
	require.NotNil(t, got.AudioURL)
	assert.Equal(t, "perro.mp3", *got.AudioURL)

	_, err = f.flashcards.Update(ctx, card.ID, services.UpdateFlashcardInput{SideA: optional.Null[string]()})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = f.flashcards.Update(ctx, card.ID+1, services.UpdateFlashcardInput{SideA: optional.Of("x")})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFlashcardService_Update_URLTooLong(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := setupLevel(t, f)
	card := f.flashcard(t, l.ID, "Dog", "Perro", nil)
	longURL := "https://cdn.example.com/" + strings.Repeat("a", 3000)

	_, err := f.flashcards.Create(ctx, services.CreateFlashcardInput{
		LevelID:  uintPtr(l.ID),
		SideA:    "Cat",
		SideB:    "Gato",
		ImageURL: strPtr(longURL),
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	for _, in := range []services.UpdateFlashcardInput{
		{ImageURL: optional.Of(longURL)},
		{AudioURL: optional.Of(longURL)},
	} {
		_, err = f.flashcards.Update(ctx, card.ID, in)
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "must be at most 2048 characters", verr.Fields[0].Message)
	}

	got, err := f.flashcards.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.AudioURL)
	assert.NotContains(t, f.audit.ops(), "update:flashcard")
}

func TestFlashcardService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := setupLevel(t, f)
	card := f.flashcard(t, l.ID, "Dog", "Perro", nil)

	require.NoError(t, f.flashcards.Delete(ctx, card.ID))

	_, err := f.flashcards.GetByID(ctx, card.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, f.flashcards.Delete(ctx, card.ID), services.ErrNotFound)

	level, err := f.levels.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, level.Flashcards)
}
