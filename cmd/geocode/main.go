// Command geocode prints the coordinates of the first match for an address.
//
//	geocode "Av. Libertador 1000, Buenos Aires"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/i474232898/goodday-climate/internal/config"
	"github.com/i474232898/goodday-climate/internal/geocode"
	"github.com/i474232898/goodday-climate/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	address := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if address == "" {
		fmt.Fprintln(os.Stderr, "usage: geocode [-timeout 30s] <address>")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	if err := log.Init(cfg.LogDebug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	nominatim := geocode.NewNominatim(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout)
	g := geocode.New(cfg.GoogleAPIKey, nominatim)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	coords, err := g.Geocode(ctx, address)
	if errors.Is(err, geocode.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "no match for %q\n", address)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "geocode failed: %v\n", err)
		return 1
	}

	if err := json.NewEncoder(os.Stdout).Encode(coords); err != nil {
		fmt.Fprintf(os.Stderr, "write result: %v\n", err)
		return 1
	}
	return 0
}
