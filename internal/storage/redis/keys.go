package redis

import (
	"fmt"

	"github.com/pindrop-app/pindrop/internal/model"
)

// Key prefix for all pindrop data
const keyPrefix = "pindrop"

// Key generation functions for each entity type

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index.
// The key doubles as the uniqueness guard: CreateUser claims it with SETNX.
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// pinKey returns the Redis key for a Pin document
func pinKey(id model.PinID) string {
	return fmt.Sprintf("%s:pin:%s", keyPrefix, id)
}

// pinOrderKey returns the Redis key for the LIST of pin keys in insertion order
func pinOrderKey() string {
	return fmt.Sprintf("%s:idx:pins", keyPrefix)
}
