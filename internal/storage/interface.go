package storage

import (
	"context"

	"github.com/pindrop-app/pindrop/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	//
	// CreateUser is an atomic check-and-insert: the store itself is the
	// single arbiter of username uniqueness, so two concurrent creates for
	// the same username resolve to exactly one success and one
	// model.ErrDuplicateUsername.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Pin operations
	//
	// ListPins returns pins in insertion order (oldest first) and an empty
	// slice when no pins exist.
	CreatePin(ctx context.Context, pin *model.Pin) error
	GetPin(ctx context.Context, id model.PinID) (*model.Pin, error)
	ListPins(ctx context.Context) ([]*model.Pin, error)
}
