package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/goodday-climate/internal/api/http"
	"github.com/i474232898/goodday-climate/internal/climate"
	"github.com/i474232898/goodday-climate/internal/climate/providers"
	"github.com/i474232898/goodday-climate/internal/config"
	"github.com/i474232898/goodday-climate/internal/log"
	"github.com/i474232898/goodday-climate/internal/scheduler"
	"github.com/i474232898/goodday-climate/internal/store"
)

const serviceName = "goodday-climate"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := log.Init(cfg.LogDebug); err != nil {
		panic(err)
	}
	defer log.Sync()

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewNASAPowerProvider(httpClient, cfg.PowerBaseURL, cfg.PowerCommunity)
	service := climate.NewService(provider, cfg.FetchYears(), cfg.FilterYears())

	// Provider reachability probes, kept for /health.
	probes := store.NewMemoryStore(cfg.ProbeHistory, cfg.ProbeMaxAge)
	sched := scheduler.New(provider, probes, cfg.ProbeInterval, cfg.HTTPTimeout)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(serviceName)
	httpapi.RegisterHealth(app, serviceName, probes, provider.Name())
	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Infow("listening", "port", cfg.Port,
			"fetchYears", cfg.FetchYears(), "filterYears", cfg.FilterYears())
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorw("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("error during shutdown", "error", err)
	}
}
