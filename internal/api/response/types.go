package response

import (
	"time"

	"github.com/pindrop-app/pindrop/internal/model"
)

// User represents a user in API responses. The password hash is never part
// of the response shape.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse is the minimal identity payload returned on login
type LoginResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// LoginResponseFromModel converts a model.User to a LoginResponse
func LoginResponseFromModel(u *model.User) LoginResponse {
	return LoginResponse{
		ID:       string(u.ID),
		Username: u.Username,
	}
}

// Pin represents a pin in API responses
type Pin struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Rating    int       `json:"rating"`
	Lat       float64   `json:"lat"`
	Long      float64   `json:"long"`
	CreatedAt time.Time `json:"createdAt"`
}

// PinFromModel converts a model.Pin to a response Pin
func PinFromModel(p *model.Pin) Pin {
	return Pin{
		ID:        string(p.ID),
		Username:  p.Username,
		Title:     p.Title,
		Desc:      p.Description,
		Rating:    p.Rating,
		Lat:       p.Latitude,
		Long:      p.Longitude,
		CreatedAt: p.CreatedAt,
	}
}

// PinsFromModel converts a slice of model.Pin, preserving order
func PinsFromModel(pins []*model.Pin) []Pin {
	out := make([]Pin, len(pins))
	for i, p := range pins {
		out[i] = PinFromModel(p)
	}
	return out
}
