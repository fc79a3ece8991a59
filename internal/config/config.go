package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, read from the environment at
// startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// SQLitePath selects the SQLite-backed store when set; empty keeps the
	// in-memory store.
	SQLitePath string `env:"SQLITE_PATH"`
	// StoreTimeout bounds each store call so an unreachable store surfaces
	// as a failure instead of hanging the request.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	// SeedFile is an optional TOML file of demo listings and sessions.
	SeedFile string `env:"SEED_FILE"`
	// ListingCacheSize caps the LRU cache of listing context rows.
	ListingCacheSize int `env:"LISTING_CACHE_SIZE" envDefault:"256"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
