package memory

import (
	"context"
	"sync"

	"github.com/pindrop-app/pindrop/internal/model"
	"github.com/pindrop-app/pindrop/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	pins          map[model.PinID]*model.Pin
	pinOrder      []model.PinID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		pins:          make(map[model.PinID]*model.Pin),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Uniqueness check and insert happen under the same lock
	if _, ok := s.usernameIndex[user.Username]; ok {
		return model.ErrDuplicateUsername
	}
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Pin operations

func (s *Storage) CreatePin(ctx context.Context, pin *model.Pin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pins[pin.ID] = pin
	s.pinOrder = append(s.pinOrder, pin.ID)
	return nil
}

func (s *Storage) GetPin(ctx context.Context, id model.PinID) (*model.Pin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pin, ok := s.pins[id]
	if !ok {
		return nil, model.ErrPinNotFound
	}
	return pin, nil
}

func (s *Storage) ListPins(ctx context.Context) ([]*model.Pin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pins := make([]*model.Pin, 0, len(s.pinOrder))
	for _, id := range s.pinOrder {
		if pin, ok := s.pins[id]; ok {
			pins = append(pins, pin)
		}
	}
	return pins, nil
}
