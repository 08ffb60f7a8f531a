package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pindrop-app/pindrop/internal/api/apierr"
	"github.com/pindrop-app/pindrop/internal/api/request"
	"github.com/pindrop-app/pindrop/internal/api/response"
	"github.com/pindrop-app/pindrop/internal/services/pin"
)

// PinHandler handles pin endpoints
type PinHandler struct {
	pinService *pin.Service
}

// NewPinHandler creates a new pin handler
func NewPinHandler(pinService *pin.Service) *PinHandler {
	return &PinHandler{
		pinService: pinService,
	}
}

// Create handles POST /api/pins
func (h *PinHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	// Presence only. Rating range and coordinate bounds are accepted as
	// supplied, as is the username (no ownership check).
	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}

	created, err := h.pinService.Create(r.Context(), pin.CreateParams{
		Username:    req.Username,
		Title:       req.Title,
		Description: req.Desc,
		Rating:      req.Rating,
		Latitude:    req.Lat,
		Longitude:   req.Long,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PinFromModel(created))
}

// List handles GET /api/pins
func (h *PinHandler) List(w http.ResponseWriter, r *http.Request) {
	pins, err := h.pinService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PinsFromModel(pins))
}
