package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/goodday-climate/internal/log"
	"github.com/i474232898/goodday-climate/internal/store"
)

// Pinger is a provider that can check its own reachability.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Recorder receives probe results.
type Recorder interface {
	Save(result store.ProbeResult)
}

// Scheduler periodically probes a provider and records the outcome.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pinger    Pinger
	recorder  Recorder
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. A zero interval disables probing.
func New(pinger Pinger, recorder Recorder, interval, timeout time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		pinger:    pinger,
		recorder:  recorder,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the probe job and starts the underlying scheduler.
// The first probe runs immediately.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Infow("scheduler: provider probe disabled")
		return nil
	}

	if _, err := s.scheduler.Every(s.interval).Do(s.ProbeOnce); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// ProbeOnce pings the provider and records the result.
func (s *Scheduler) ProbeOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	err := s.pinger.Ping(ctx)

	result := store.ProbeResult{
		Provider:  s.pinger.Name(),
		Timestamp: started.UTC(),
		OK:        err == nil,
		LatencyMs: time.Since(started).Milliseconds(),
	}
	if err != nil {
		result.Error = err.Error()
		log.Warnw("scheduler: provider probe failed", "provider", result.Provider, "error", err)
	} else {
		log.Debugw("scheduler: provider probe ok", "provider", result.Provider, "latencyMs", result.LatencyMs)
	}

	s.recorder.Save(result)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
