package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pindrop-app/pindrop/internal/dependencies/clock"
	"github.com/pindrop-app/pindrop/internal/model"
	"github.com/pindrop-app/pindrop/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles account registration and login.
//
// No session or token is issued on login: the API deliberately mirrors the
// original trust model where the client holds its own username as proof of
// identity. Callers wanting verifiable identity need something stronger
// layered on top.
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	bcryptCost int
}

// Config holds configuration for the auth service
type Config struct {
	// BcryptCost is the bcrypt work factor for password hashing
	BcryptCost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		BcryptCost: bcrypt.DefaultCost,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.BcryptCost < bcrypt.MinCost {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{
		storage:    storage,
		clock:      clock,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. The plaintext password is hashed with
// bcrypt and discarded; it is never persisted or logged. Returns
// model.ErrDuplicateUsername when the username is already taken - the
// storage layer arbitrates uniqueness, so concurrent registrations for the
// same username cannot both succeed.
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the matching user. An unknown
// username and a wrong password both surface ErrInvalidCredentials so the
// response never reveals which one was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
