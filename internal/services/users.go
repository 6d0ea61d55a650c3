package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/auth"
	"github.com/mrlokans/flashcards/internal/entities"
)

// CreateUserInput is the signup request.
type CreateUserInput struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Email    string `json:"email" validate:"notblank,email,max=255"`
	Password string `json:"password" validate:"notblank"`
}

// UserService manages user accounts.
type UserService struct {
	uow        UnitOfWork
	audit      Auditor
	bcryptCost int
}

func NewUserService(uow UnitOfWork, auditor Auditor, bcryptCost int) *UserService {
	return &UserService{uow: uow, audit: auditorOrNoop(auditor), bcryptCost: bcryptCost}
}

// Create registers a user. Username and email must be unused; the password
// is stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return UserResponse{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
			return UserResponse{}, invalidField("password", err.Error())
		}
		return UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{Username: in.Username, Email: in.Email, PasswordHash: hash}
	err = s.uow.InTx(ctx, func(repos Repositories) error {
		usernameTaken, emailTaken, err := repos.Users.UsernameOrEmailTaken(user.Username, user.Email)
		if err != nil {
			return fmt.Errorf("failed to check existing users: %w", err)
		}
		verr := &ValidationError{}
		if usernameTaken {
			verr.Fields = append(verr.Fields, FieldError{Field: "username", Message: "is already taken"})
		}
		if emailTaken {
			verr.Fields = append(verr.Fields, FieldError{Field: "email", Message: "is already registered"})
		}
		if len(verr.Fields) > 0 {
			return verr
		}
		if err := repos.Users.CreateUser(user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return UserResponse{}, err
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("User created")
	s.audit.LogCreate(entities.EntityUser, user.ID, user.Username)
	return toUserResponse(user), nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	var resp UserResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		user, err := repos.Users.GetUserByID(id)
		if err != nil {
			return lookupErr(err, entities.EntityUser, id)
		}
		resp = toUserResponse(user)
		return nil
	})
	return resp, err
}

// GetByUsername looks a user up by exact username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (UserResponse, error) {
	var resp UserResponse
	err := s.uow.InTx(ctx, func(repos Repositories) error {
		user, err := repos.Users.GetUserByUsername(username)
		if err != nil {
			if isRecordNotFound(err) {
				return &NotFoundError{Entity: entities.EntityUser, Key: username}
			}
			return fmt.Errorf("failed to load user %q: %w", username, err)
		}
		resp = toUserResponse(user)
		return nil
	})
	return resp, err
}
