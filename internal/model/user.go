package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered account.
// PasswordHash is a bcrypt hash; the plaintext password is never stored.
// API response mapping lives in the api/response package so the hash
// cannot leak onto the wire.
type User struct {
	ID           UserID
	Username     string // login username, unique (immutable)
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
