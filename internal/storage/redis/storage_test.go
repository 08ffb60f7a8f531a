package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pindrop-app/pindrop/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{ID: "user-1", Username: "alice", PasswordHash: "hash123"}
	_ = s.storage.CreateUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("user-1", string(retrieved.ID))
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCreateUserDuplicateUsername() {
	user1 := &model.User{ID: "user-1", Username: "alice"}
	user2 := &model.User{ID: "user-2", Username: "alice"}

	err := s.storage.CreateUser(s.ctx, user1)
	s.Require().NoError(err)

	err = s.storage.CreateUser(s.ctx, user2)
	s.ErrorIs(err, model.ErrDuplicateUsername)

	// The index still points at the first registration
	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("user-1", string(retrieved.ID))
}

// Pin tests

func (s *StorageSuite) TestCreateAndGetPin() {
	pin := &model.Pin{
		ID:          "pin-1",
		Username:    "alice",
		Title:       "Tower Bridge",
		Description: "Nice view",
		Rating:      5,
		Latitude:    51.5055,
		Longitude:   -0.0754,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.storage.CreatePin(s.ctx, pin)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPin(s.ctx, "pin-1")
	s.Require().NoError(err)
	s.Equal(pin.Title, retrieved.Title)
	s.Equal(pin.Rating, retrieved.Rating)
	s.Equal(pin.Longitude, retrieved.Longitude)
}

func (s *StorageSuite) TestGetPinNotFound() {
	_, err := s.storage.GetPin(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPinNotFound)
}

func (s *StorageSuite) TestListPinsEmpty() {
	pins, err := s.storage.ListPins(s.ctx)
	s.Require().NoError(err)
	s.Empty(pins)
	s.NotNil(pins)
}

func (s *StorageSuite) TestListPinsInsertionOrder() {
	_ = s.storage.CreatePin(s.ctx, &model.Pin{ID: "pin-1", Username: "alice", Title: "First"})
	_ = s.storage.CreatePin(s.ctx, &model.Pin{ID: "pin-2", Username: "bob", Title: "Second"})
	_ = s.storage.CreatePin(s.ctx, &model.Pin{ID: "pin-3", Username: "alice", Title: "Third"})

	pins, err := s.storage.ListPins(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pins, 3)
	s.Equal("First", pins[0].Title)
	s.Equal("Second", pins[1].Title)
	s.Equal("Third", pins[2].Title)
}

func (s *StorageSuite) TestListPinsSkipsDeletedDocuments() {
	_ = s.storage.CreatePin(s.ctx, &model.Pin{ID: "pin-1", Username: "alice", Title: "First"})
	_ = s.storage.CreatePin(s.ctx, &model.Pin{ID: "pin-2", Username: "bob", Title: "Second"})

	// Simulate a document removed out-of-band while its index entry remains
	s.mini.Del(pinKey("pin-1"))

	pins, err := s.storage.ListPins(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pins, 1)
	s.Equal("Second", pins[0].Title)
}
