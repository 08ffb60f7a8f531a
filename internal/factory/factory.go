package factory

import (
	"errors"

	"github.com/pindrop-app/pindrop/internal/dependencies/clock"
	"github.com/pindrop-app/pindrop/internal/services/auth"
	"github.com/pindrop-app/pindrop/internal/services/pin"
	"github.com/pindrop-app/pindrop/internal/storage"
	"github.com/pindrop-app/pindrop/internal/storage/memory"
	redisstorage "github.com/pindrop-app/pindrop/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService *auth.Service
	PinService  *pin.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired.
// The store handle is acquired once here and shared for the process
// lifetime; Close releases it on shutdown.
func New(cfg Config) (*App, error) {
	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	authCfg := cfg.AuthConfig
	if authCfg.BcryptCost == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config) *App {
	authService := auth.New(store, clk, authCfg)
	pinService := pin.New(store, clk)

	return &App{
		Storage:     store,
		Clock:       clk,
		AuthService: authService,
		PinService:  pinService,
	}
}

// Close releases the backing store connection if it holds one
func (a *App) Close() error {
	if closer, ok := a.Storage.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
