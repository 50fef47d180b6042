package climate

import (
	"context"
)

// Provider abstracts a source of historical daily climate rows for a point.
type Provider interface {
	Name() string
	FetchDaily(ctx context.Context, lat, lon float64, years YearRange) ([]RawDay, error)
}
