package geocode

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/goodday-climate/internal/common"
)

// Google geocodes through the Google Maps Geocoding API.
// The underlying library keeps the API key in a package variable, so every
// Google value in a process shares the key it was last constructed with.
type Google struct {
	lookup func(geocoder.Address) (geocoder.Location, error)
}

var errMalformedResponse = errors.New("malformed google geocoding response")

// NewGoogle configures the Google backend with apiKey.
func NewGoogle(apiKey string) *Google {
	geocoder.ApiKey = apiKey
	return &Google{lookup: geocoder.Geocoding}
}

// Geocode sends the whole address as the street line; Google parses free text.
// The library call is not cancellable, so ctx is only checked up front.
func (g *Google) Geocode(ctx context.Context, address string) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	loc, err := g.safeLookup(geocoder.Address{Street: address})
	if err != nil {
		if common.ContainsAnyFold(err.Error(), "No results found", "ZERO_RESULTS") {
			return Coordinates{}, ErrNotFound
		}
		return Coordinates{}, fmt.Errorf("google geocoding: %w", err)
	}

	return Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}

// safeLookup turns a panic in the library (it indexes the first result without
// checking the result count) into an error.
func (g *Google) safeLookup(addr geocoder.Address) (loc geocoder.Location, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errMalformedResponse, r)
		}
	}()
	return g.lookup(addr)
}

// New returns the Google backend when apiKey is set, Nominatim otherwise.
func New(apiKey string, nominatim *Nominatim) Geocoder {
	if apiKey != "" {
		return NewGoogle(apiKey)
	}
	return nominatim
}
