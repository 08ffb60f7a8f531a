// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server
type Config struct {
	Host string `env:"PINDROP_HOST"`
	Port int    `env:"PINDROP_PORT" envDefault:"8800"`

	ReadTimeout     time.Duration `env:"PINDROP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"PINDROP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"PINDROP_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"PINDROP_STORAGE" envDefault:"memory"`

	// Redis settings, used when StorageType is "redis"
	RedisURL          string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	// BcryptCost is the password hashing work factor
	BcryptCost int `env:"PINDROP_BCRYPT_COST" envDefault:"10"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration from environment: %w", err)
	}

	return cfg, nil
}
