package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/goodday-climate/internal/climate"
	"github.com/i474232898/goodday-climate/internal/climate/providers"
	"github.com/i474232898/goodday-climate/internal/geocode"
)

var validate = validator.New()

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	LogDebug bool

	// NASA POWER provider.
	PowerBaseURL   string        `validate:"required,url"`
	PowerCommunity string        `validate:"required,oneof=RE AG SB"`
	HTTPTimeout    time.Duration `validate:"gt=0"`

	// FetchYears bounds the provider request, FilterYears the same-day search.
	// They are deliberately independent.
	FetchStartYear  int `validate:"gte=1981"`
	FetchEndYear    int `validate:"gtefield=FetchStartYear"`
	FilterStartYear int `validate:"gte=1900"`
	FilterEndYear   int `validate:"gtefield=FilterStartYear"`

	// Provider health probe. ProbeInterval 0 disables it, ProbeMaxAge 0 keeps
	// results until ProbeHistory pushes them out.
	ProbeInterval time.Duration `validate:"gte=0"`
	ProbeHistory  int           `validate:"gte=1"`
	ProbeMaxAge   time.Duration `validate:"gte=0"`

	// Geocoding utility.
	GeocoderBaseURL   string        `validate:"required,url"`
	GeocoderUserAgent string        `validate:"required"`
	GeocoderTimeout   time.Duration `validate:"gt=0"`
	GoogleAPIKey      string
}

// FetchYears is the provider request range.
func (c *AppConfig) FetchYears() climate.YearRange {
	return climate.YearRange{Start: c.FetchStartYear, End: c.FetchEndYear}
}

// FilterYears is the range searched for the target calendar day.
func (c *AppConfig) FilterYears() climate.YearRange {
	return climate.YearRange{Start: c.FilterStartYear, End: c.FilterEndYear}
}

// Load reads configuration from a .env file (if any) and the environment,
// with defaults matching the public service.
func Load() (*AppConfig, error) {
	// A missing .env is normal in containers.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:              getenvDefault("PORT", "8080"),
		LogDebug:          getenvBool("LOG_DEBUG", false),
		PowerBaseURL:      getenvDefault("POWER_BASE_URL", providers.DefaultPowerBaseURL),
		PowerCommunity:    getenvDefault("POWER_COMMUNITY", "RE"),
		FetchStartYear:    getenvInt("FETCH_START_YEAR", 2010),
		FetchEndYear:      getenvInt("FETCH_END_YEAR", 2023),
		FilterStartYear:   getenvInt("FILTER_START_YEAR", 1984),
		FilterEndYear:     getenvInt("FILTER_END_YEAR", 2023),
		ProbeHistory:      getenvInt("PROBE_HISTORY", 48),
		GeocoderBaseURL:   getenvDefault("GEOCODER_BASE_URL", geocode.DefaultNominatimURL),
		GeocoderUserAgent: getenvDefault("GEOCODER_USER_AGENT", geocode.DefaultUserAgent),
		GoogleAPIKey:      os.Getenv("GOOGLE_GEOCODER_API_KEY"),
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "60s"); err != nil {
		return nil, err
	}
	if cfg.ProbeInterval, err = getenvDuration("PROBE_INTERVAL", "30m"); err != nil {
		return nil, err
	}
	if cfg.ProbeMaxAge, err = getenvDuration("PROBE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}
	if cfg.GeocoderTimeout, err = getenvDuration("GEOCODER_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
