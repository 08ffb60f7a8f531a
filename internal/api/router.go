package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pindrop-app/pindrop/internal/api/handler"
	apimiddleware "github.com/pindrop-app/pindrop/internal/api/middleware"
	"github.com/pindrop-app/pindrop/internal/middleware"
	"github.com/pindrop-app/pindrop/internal/services/auth"
	"github.com/pindrop-app/pindrop/internal/services/pin"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	PinService  *pin.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	pinHandler := handler.NewPinHandler(cfg.PinService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// User routes
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Pin routes
	api.HandleFunc("/pins", pinHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/pins", pinHandler.List).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
