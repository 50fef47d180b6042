package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/i474232898/goodday-climate/internal/log"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultUserAgent    = "NASA-Hackathon-App"
	defaultTimeout      = 10 * time.Second
)

// Nominatim geocodes through the OpenStreetMap Nominatim search API.
// Calls share one token bucket of one request per second, the service's usage limit.
type Nominatim struct {
	client  *resty.Client
	limiter *rate.Limiter
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatim creates a client. Empty arguments fall back to the defaults.
func NewNominatim(baseURL, userAgent string, timeout time.Duration) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		log.Debugw("nominatim response",
			"url", resp.Request.URL, "status", resp.StatusCode(), "duration", resp.Time().String())
		return nil
	})

	return &Nominatim{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (n *Nominatim) Geocode(ctx context.Context, address string) (Coordinates, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return Coordinates{}, err
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      address,
			"format": "json",
			"limit":  "1",
		}).
		Get("/search")
	if err != nil {
		return Coordinates{}, fmt.Errorf("nominatim request: %w", err)
	}
	if resp.IsError() {
		return Coordinates{}, fmt.Errorf("nominatim error: %d %s", resp.StatusCode(), resp.Status())
	}

	var places []nominatimPlace
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		return Coordinates{}, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(places) == 0 {
		return Coordinates{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q: %w", places[0].Lon, err)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}
