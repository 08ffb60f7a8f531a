package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")

	// Pin errors
	ErrPinNotFound = errors.New("pin not found")
)
