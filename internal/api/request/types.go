// Package request defines the typed request bodies for each endpoint.
// Field names match the original wire format, so existing clients keep
// working unchanged.
package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePinRequest is the request body for dropping a pin
type CreatePinRequest struct {
	Username string  `json:"username"`
	Title    string  `json:"title"`
	Desc     string  `json:"desc"`
	Rating   int     `json:"rating"`
	Lat      float64 `json:"lat"`
	Long     float64 `json:"long"`
}
