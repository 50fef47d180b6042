package climate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for malformed coordinates or dates.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrProviderUnavailable wraps network, timeout and non-2xx provider failures.
	ErrProviderUnavailable = errors.New("climate provider unavailable")
	// ErrNoLocationData is returned when the provider yields no usable series.
	ErrNoLocationData = errors.New("no climate data for location")
	// ErrNoData is returned when no record matches the requested calendar day.
	ErrNoData = errors.New("no climate data for date")
)

// DateFormatError reports a date string none of the accepted layouts could parse.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format: %s", e.Value)
}

func (e *DateFormatError) Unwrap() error {
	return ErrInvalidParameter
}
