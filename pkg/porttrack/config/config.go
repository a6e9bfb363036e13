// Package config holds environment-driven settings for the scrapers.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries the source URLs and runtime settings. Every field can
// be overridden through the environment (PORTTRACK_ prefix); defaults
// match the published NSW Transport sources.
type Config struct {
	// PortalURL is the freight-data portal page linking to the open
	// data dataset.
	PortalURL string `env:"PORTAL_URL" envDefault:"https://www.transport.nsw.gov.au/data-and-research/freight-data/port-of-newcastle"`

	// FallbackExcelURL is the last known direct download URL, used
	// when dynamic resolution fails.
	FallbackExcelURL string `env:"FALLBACK_EXCEL_URL" envDefault:"https://opendata.transport.nsw.gov.au/data/dataset/5da0e3b9-e46a-4aa3-96c9-2574d83fe6fb/resource/3c5c9d89-ce54-4f72-9550-4077b7540612/download/port-of-newcastle.xlsx"`

	// MovementsURL is the daily vessel movements page.
	MovementsURL string `env:"MOVEMENTS_URL" envDefault:"https://www.portauthoritynsw.com.au/port-operations/newcastle-harbour/newcastle-harbour-daily-vessel-movements"`

	// OutputDir is where monthly JSON files are written.
	OutputDir string `env:"OUTPUT_DIR" envDefault:"data/monthly"`

	// HTTPTimeout bounds each outbound request.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg, env.Options{Prefix: "PORTTRACK_"}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
