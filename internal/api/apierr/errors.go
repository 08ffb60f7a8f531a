package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pindrop-app/pindrop/internal/model"
	"github.com/pindrop-app/pindrop/internal/services/auth"
)

// ErrorResponse is the JSON body of every error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// Login failures are deliberately generic so responses never reveal whether
// the username or the password was wrong.
const wrongCredentialsMessage = "Wrong username or password!"

// httpError combines an HTTP status code with a response message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrDuplicateUsername):
		return &httpError{http.StatusConflict, "Username already taken!"}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, "User not found"}
	case errors.Is(err, model.ErrPinNotFound):
		return &httpError{http.StatusNotFound, "Pin not found"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusBadRequest, wrongCredentialsMessage}

	default:
		// Store-layer faults and anything unexpected surface the underlying
		// message. This is not a hardened system; the generic treatment is
		// reserved for credentials.
		return &httpError{http.StatusInternalServerError, err.Error()}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
