package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/goodday-climate/internal/climate"
)

const (
	// DefaultPowerBaseURL is the NASA POWER daily point endpoint.
	DefaultPowerBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

	powerDateLayout       = "20060102"
	powerDefaultFillValue = -999.0
)

// NASAPowerProvider implements climate.Provider for the NASA POWER daily API.
type NASAPowerProvider struct {
	name      string
	baseURL   string
	community string
	client    *http.Client
	circuit   *gobreaker.CircuitBreaker
}

// NewNASAPowerProvider creates a provider using client for outbound calls.
// An empty baseURL or community falls back to the public defaults.
func NewNASAPowerProvider(client *http.Client, baseURL, community string) *NASAPowerProvider {
	if baseURL == "" {
		baseURL = DefaultPowerBaseURL
	}
	if community == "" {
		community = "RE"
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nasapower",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &NASAPowerProvider{
		name:      "nasapower",
		baseURL:   baseURL,
		community: community,
		client:    client,
		circuit:   cb,
	}
}

func (p *NASAPowerProvider) Name() string {
	return p.name
}

// powerResponse is the subset of the POWER GeoJSON payload we read.
type powerResponse struct {
	Header struct {
		FillValue *float64 `json:"fill_value"`
	} `json:"header"`
	Properties struct {
		Parameter map[string]map[string]*float64 `json:"parameter"`
	} `json:"properties"`
}

// FetchDaily requests every climate.Parameters series for the whole of years.
func (p *NASAPowerProvider) FetchDaily(ctx context.Context, lat, lon float64, years climate.YearRange) ([]climate.RawDay, error) {
	params := make([]string, len(climate.Parameters))
	for i, param := range climate.Parameters {
		params[i] = string(param)
	}

	payload, err := p.fetch(ctx, lat, lon, params,
		fmt.Sprintf("%04d0101", years.Start), fmt.Sprintf("%04d1231", years.End))
	if err != nil {
		return nil, err
	}

	return decodeDays(payload), nil
}

// Ping fetches a single day of one parameter to check the API is reachable.
func (p *NASAPowerProvider) Ping(ctx context.Context) error {
	_, err := p.fetch(ctx, 0, 0, []string{string(climate.ParamTemp)}, "20200101", "20200101")
	return err
}

func (p *NASAPowerProvider) fetch(ctx context.Context, lat, lon float64, params []string, start, end string) (*powerResponse, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("parameters", strings.Join(params, ","))
		values.Set("community", p.community)
		values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
		values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
		values.Set("start", start)
		values.Set("end", end)
		values.Set("format", "JSON")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload powerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode nasapower response: %w", climate.ErrProviderUnavailable, err)
	}
	return &payload, nil
}

// decodeDays pivots parameter->date->value into one RawDay per date. Fill values
// and nulls become missing values; unknown dates are skipped.
func decodeDays(payload *powerResponse) []climate.RawDay {
	fill := powerDefaultFillValue
	if payload.Header.FillValue != nil {
		fill = *payload.Header.FillValue
	}

	byDate := make(map[string]*climate.RawDay)
	var order []string

	for _, param := range climate.Parameters {
		series, ok := payload.Properties.Parameter[string(param)]
		if !ok {
			continue
		}
		for dateStr, v := range series {
			day, ok := byDate[dateStr]
			if !ok {
				date, err := time.Parse(powerDateLayout, dateStr)
				if err != nil {
					continue
				}
				day = &climate.RawDay{
					Date:   date,
					Values: make(map[climate.Parameter]*float64, len(climate.Parameters)),
				}
				byDate[dateStr] = day
				order = append(order, dateStr)
			}
			if v == nil || *v == fill {
				day.Values[param] = nil
				continue
			}
			val := *v
			day.Values[param] = &val
		}
	}

	days := make([]climate.RawDay, 0, len(order))
	for _, k := range order {
		days = append(days, *byDate[k])
	}
	return days
}
