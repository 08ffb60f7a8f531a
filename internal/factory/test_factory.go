package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pindrop-app/pindrop/internal/dependencies/mocks"
	"github.com/pindrop-app/pindrop/internal/services/auth"
	"github.com/pindrop-app/pindrop/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory storage, a
// controllable clock, and the cheapest bcrypt cost so hashing does not
// dominate test runtime.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, auth.Config{BcryptCost: bcrypt.MinCost})

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
