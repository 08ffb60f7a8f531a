package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pindrop-app/pindrop/internal/model"
	"github.com/pindrop-app/pindrop/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Users and pins are stored as JSON documents; secondary indexes (username
// lookup, pin insertion order) are maintained alongside the documents.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Claim the username index with SETNX. Redis serializes the claim, so
	// this is the atomic check-and-insert that arbitrates concurrent
	// registrations for the same username.
	claimed, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrDuplicateUsername
	}

	if err := s.client.Set(ctx, userKey(user.ID), data, 0).Err(); err != nil {
		// Release the claim so a retry is not locked out forever
		_ = s.client.Del(ctx, usernameIndexKey(user.Username)).Err()
		return err
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	// Look up user ID from username index
	userIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userIDStr))
}

// Pin operations

func (s *Storage) CreatePin(ctx context.Context, pin *model.Pin) error {
	data, err := json.Marshal(pin)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + order index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, pinKey(pin.ID), data, 0)
	pipe.RPush(ctx, pinOrderKey(), pinKey(pin.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPin(ctx context.Context, id model.PinID) (*model.Pin, error) {
	data, err := s.client.Get(ctx, pinKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPinNotFound
		}
		return nil, err
	}

	var pin model.Pin
	if err := json.Unmarshal(data, &pin); err != nil {
		return nil, err
	}
	return &pin, nil
}

func (s *Storage) ListPins(ctx context.Context) ([]*model.Pin, error) {
	// The order list holds pin keys oldest-first
	pinKeys, err := s.client.LRange(ctx, pinOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(pinKeys) == 0 {
		return []*model.Pin{}, nil
	}

	values, err := s.client.MGet(ctx, pinKeys...).Result()
	if err != nil {
		return nil, err
	}

	pins := make([]*model.Pin, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Document deleted out-of-band
		}
		var pin model.Pin
		if err := json.Unmarshal([]byte(val.(string)), &pin); err != nil {
			continue // Skip invalid data
		}
		pins = append(pins, &pin)
	}

	return pins, nil
}
