package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/flashcards/internal/auth"
	"github.com/mrlokans/flashcards/internal/entities"
	"github.com/mrlokans/flashcards/internal/services"
)

func TestUserService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Create(ctx, services.CreateUserInput{
		Username: "  maria ",
		Email:    "maria@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "maria", u.Username)
	assert.Equal(t, "maria@example.com", u.Email)

	var stored entities.User
	require.NoError(t, f.db.DB.First(&stored, u.ID).Error)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NoError(t, auth.CheckPassword("hunter2hunter2", stored.PasswordHash))

	assert.Equal(t, []string{"create:user"}, f.audit.ops())
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input services.CreateUserInput
		field string
	}{
		{"blank username", services.CreateUserInput{Username: "   ", Email: "a@example.com", Password: "password1"}, "username"},
		{"blank email", services.CreateUserInput{Username: "a", Email: "", Password: "password1"}, "email"},
		{"malformed email", services.CreateUserInput{Username: "a", Email: "not-an-email", Password: "password1"}, "email"},
		{"blank password", services.CreateUserInput{Username: "a", Email: "a@example.com", Password: ""}, "password"},
		{"short password", services.CreateUserInput{Username: "a", Email: "a@example.com", Password: "short"}, "password"},
		{"long password", services.CreateUserInput{Username: "a", Email: "a@example.com", Password: strings.Repeat("p", 73)}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.users.Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrValidation)

			var verr *services.ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tt.field, verr.Fields[0].Field)

			var count int64
			require.NoError(t, f.db.DB.Model(&entities.User{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestUserService_Create_Duplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.user(t, "maria")

	_, err := f.users.Create(ctx, services.CreateUserInput{Username: "maria", Email: "other@example.com", Password: "password1"})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = f.users.Create(ctx, services.CreateUserInput{Username: "other", Email: "MARIA@example.com", Password: "password1"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestUserService_GetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.user(t, "maria")

	got, err := f.users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = f.users.GetByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, services.ErrNotFound)
	var nf *services.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, entities.EntityUser, nf.Entity)
}

func TestUserService_GetByUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.user(t, "maria")

	got, err := f.users.GetByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
