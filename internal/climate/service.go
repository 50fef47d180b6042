package climate

import (
	"context"
	"fmt"

	"github.com/i474232898/goodday-climate/internal/log"
)

// Service builds same-calendar-day climate reports from a Provider.
type Service struct {
	provider    Provider
	fetchYears  YearRange
	filterYears YearRange
}

// NewService creates a new Service. fetchYears bounds the provider request;
// filterYears bounds the years searched for the target day. The two are
// independent, so years outside fetchYears simply never match.
func NewService(provider Provider, fetchYears, filterYears YearRange) *Service {
	return &Service{
		provider:    provider,
		fetchYears:  fetchYears,
		filterYears: filterYears,
	}
}

// Report fetches the point's history and summarizes the target calendar day.
//
// A failing provider yields ErrNoLocationData (the cause stays in the chain under
// ErrProviderUnavailable); an empty match yields ErrNoData.
func (s *Service) Report(ctx context.Context, q Query) (Report, error) {
	day, month, err := ExtractDayMonth(q.Fecha)
	if err != nil {
		return Report{}, err
	}

	log.Debugw("building climate report",
		"provider", s.provider.Name(), "lat", q.Lat, "lon", q.Lon, "day", day, "month", month)

	raw, err := s.provider.FetchDaily(ctx, q.Lat, q.Lon, s.fetchYears)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrNoLocationData, err)
	}

	series := NewSeries(raw)
	if len(series) == 0 {
		return Report{}, ErrNoLocationData
	}

	days, err := MatchDay(series, day, month, s.filterYears)
	if err != nil {
		return Report{}, err
	}

	stats := Summarize(days)
	extremes, predictions := Classify(stats)

	return Report{
		Lat:         q.Lat,
		Lon:         q.Lon,
		Fecha:       q.Fecha,
		Stats:       stats,
		Extremes:    extremes,
		Predictions: predictions,
	}, nil
}
