package model

import "time"

// PinID uniquely identifies a pin
type PinID string

// Pin is a single user-submitted map annotation: a location plus a short
// review and a star rating. Username is a plain denormalized string; it is
// not validated against an existing User (carried over from the original
// data model as an explicit non-invariant).
type Pin struct {
	ID          PinID
	Username    string
	Title       string
	Description string
	Rating      int // intended range 1-5, not enforced at the data layer
	Latitude    float64
	Longitude   float64
	CreatedAt   time.Time
}
