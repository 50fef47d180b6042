package store

import (
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreLatestAndRetention(t *testing.T) {
	s := NewMemoryStore(3, 0)

	if _, err := s.Latest("nasapower"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.Save(ProbeResult{Provider: "nasapower", Timestamp: base.Add(time.Duration(i) * time.Minute), OK: i%2 == 0})
	}

	latest, err := s.Latest("nasapower")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !latest.Timestamp.Equal(base.Add(4 * time.Minute)) {
		t.Errorf("latest timestamp = %v", latest.Timestamp)
	}

	all, err := s.Range("nasapower", base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("retained %d results, want 3", len(all))
	}
}

func TestMemoryStoreMaxAge(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	now := time.Now().UTC()

	s.Save(ProbeResult{Provider: "p", Timestamp: now.Add(-2 * time.Hour)})
	s.Save(ProbeResult{Provider: "p", Timestamp: now})

	got, err := s.Range("p", now.Add(-3*time.Hour), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].Timestamp.Equal(now) {
		t.Errorf("expected only the fresh result, got %+v", got)
	}
}

func TestMemoryStoreRangeEmpty(t *testing.T) {
	s := NewMemoryStore(0, 0)
	now := time.Now().UTC()
	s.Save(ProbeResult{Provider: "p", Timestamp: now})

	if _, err := s.Range("p", now.Add(time.Hour), now.Add(2*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreMaxAgeDropsAllStale(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	old := time.Now().UTC().Add(-3 * time.Hour)

	s.Save(ProbeResult{Provider: "p", Timestamp: old})
	s.Save(ProbeResult{Provider: "p", Timestamp: old.Add(time.Minute)})

	if _, err := s.Latest("p"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected stale results to be pruned, got %v", err)
	}
}
