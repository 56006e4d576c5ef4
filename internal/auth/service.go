package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/mrlokans/chirp/internal/database/users"
	"github.com/mrlokans/chirp/internal/entities"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// UserStore defines the credential store used by the service.
// Lookups return users.ErrUserNotFound when nothing matches.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	Insert(ctx context.Context, user *entities.User) error
}

// SignupInput holds the fields submitted on signup.
type SignupInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// Service runs the credential flow: signup, login and identity lookup.
type Service struct {
	store  UserStore
	hasher PasswordHasher
}

// NewService creates a new authentication service.
func NewService(store UserStore, hasher PasswordHasher) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
	}
}

// Signup validates the input, stores a new user and returns it.
// Checks run in a fixed order and stop at the first failure.
// Uniqueness is checked, not locked: two concurrent signups for the same
// username can both pass, and the database unique index rejects the second.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*entities.User, error) {
	if in.FullName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrFieldsRequired
	}

	if !emailPattern.MatchString(in.Email) {
		return nil, ErrEmailInvalid
	}

	taken, err := s.exists(ctx, s.store.FindByUsername, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.exists(ctx, s.store.FindByEmail, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		FullName:     in.FullName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Followers:    []string{},
		Following:    []string{},
	}
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns the matching user.
// Error messages never include the submitted values.
func (s *Service) Login(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidUsername
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// CurrentUser returns the user with the given ID, or nil if it no longer exists.
func (s *Service) CurrentUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *Service) exists(ctx context.Context, find func(context.Context, string) (*entities.User, error), value string) (bool, error) {
	_, err := find(ctx, value)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, users.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}
