package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/i474232898/goodday-climate/internal/climate"
)

const powerFixture = `{
  "type": "Feature",
  "header": {"title": "NASA/POWER Daily", "fill_value": -999.0},
  "properties": {
    "parameter": {
      "T2M":     {"20230101": 12.5, "20230102": -999.0, "20230103": 14.0},
      "T2M_MAX": {"20230101": 18.0, "20230102": 19.0, "20230103": null},
      "RH2M":    {"20230101": 70.0, "20230102": 71.0, "bogus": 1.0}
    }
  }
}`

func TestNASAPowerFetchDaily(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"community": q.Get("community"),
			"latitude":  q.Get("latitude"),
			"longitude": q.Get("longitude"),
			"start":     q.Get("start"),
			"end":       q.Get("end"),
			"format":    q.Get("format"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(powerFixture))
	}))
	defer srv.Close()

	p := NewNASAPowerProvider(srv.Client(), srv.URL, "")
	days, err := p.FetchDaily(context.Background(), 4.61, -74.08, climate.YearRange{Start: 2010, End: 2023})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"community": "RE",
		"latitude":  "4.61",
		"longitude": "-74.08",
		"start":     "20100101",
		"end":       "20231231",
		"format":    "JSON",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	byDate := make(map[time.Time]climate.RawDay)
	for _, d := range days {
		byDate[d.Date] = d
	}

	jan2 := byDate[time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)]
	if v, ok := jan2.Values[climate.ParamTemp]; !ok || v != nil {
		t.Errorf("fill value should decode as missing, got %v", v)
	}
	if v := jan2.Values[climate.ParamTempMax]; v == nil || *v != 19 {
		t.Errorf("T2M_MAX on 2023-01-02 = %v, want 19", v)
	}

	jan3 := byDate[time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)]
	if v := jan3.Values[climate.ParamTempMax]; v != nil {
		t.Errorf("null should decode as missing, got %v", *v)
	}
}

func TestNASAPowerFetchDailyErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`},
		{name: "bad request", status: http.StatusUnprocessableEntity, body: `{"messages":["bad"]}`},
		{name: "malformed body", status: http.StatusOK, body: `{"properties":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewNASAPowerProvider(srv.Client(), srv.URL, "RE")
			_, err := p.FetchDaily(context.Background(), 0, 0, climate.YearRange{Start: 2020, End: 2020})
			if !errors.Is(err, climate.ErrProviderUnavailable) {
				t.Fatalf("expected ErrProviderUnavailable, got %v", err)
			}
		})
	}
}

func TestNASAPowerNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewNASAPowerProvider(&http.Client{Timeout: time.Second}, url, "RE")
	_, err := p.FetchDaily(context.Background(), 0, 0, climate.YearRange{Start: 2020, End: 2020})
	if !errors.Is(err, climate.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestNASAPowerPing(t *testing.T) {
	var params string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params = r.URL.Query().Get("parameters")
		_, _ = w.Write([]byte(`{"properties":{"parameter":{"T2M":{"20200101":25.1}}}}`))
	}))
	defer srv.Close()

	p := NewNASAPowerProvider(srv.Client(), srv.URL, "RE")
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params != "T2M" {
		t.Errorf("ping requested %q, want T2M", params)
	}
}

func TestDoRequestWithoutClient(t *testing.T) {
	p := NewNASAPowerProvider(nil, "http://127.0.0.1:1", "RE")
	if err := p.Ping(context.Background()); !errors.Is(err, errNoHTTPClient) {
		t.Fatalf("expected errNoHTTPClient, got %v", err)
	}
}
