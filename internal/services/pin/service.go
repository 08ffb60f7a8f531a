package pin

import (
	"context"

	"github.com/google/uuid"

	"github.com/pindrop-app/pindrop/internal/dependencies/clock"
	"github.com/pindrop-app/pindrop/internal/model"
	"github.com/pindrop-app/pindrop/internal/storage"
)

// Service handles creating and listing map pins
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new pin Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// CreateParams are the caller-supplied fields of a new pin
type CreateParams struct {
	Username    string
	Title       string
	Description string
	Rating      int
	Latitude    float64
	Longitude   float64
}

// Create persists a new pin. CreatedAt is stamped here, not supplied by the
// caller. Username is taken as-is: there is no existence check against the
// user store, matching the original data model where pins reference users
// by denormalized name only.
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Pin, error) {
	pin := &model.Pin{
		ID:          model.PinID(uuid.NewString()),
		Username:    params.Username,
		Title:       params.Title,
		Description: params.Description,
		Rating:      params.Rating,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.CreatePin(ctx, pin); err != nil {
		return nil, err
	}

	return pin, nil
}

// List returns all pins oldest-first. An empty board is not an error.
func (s *Service) List(ctx context.Context) ([]*model.Pin, error) {
	return s.storage.ListPins(ctx)
}
