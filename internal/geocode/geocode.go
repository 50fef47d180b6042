// Package geocode resolves free-text addresses to coordinates. It is a standalone
// utility and is not used on the /clima request path.
package geocode

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the service has no match for the address.
var ErrNotFound = errors.New("address not found")

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder returns the first match for an address.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}
