package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	CatalogAddress  string
	SessionSecret   string
	SessionTTL      time.Duration
	HandoffTTL      time.Duration
	SweepInterval   time.Duration
	ShutdownTimeout time.Duration
	DetailWriteBack bool
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 12 * time.Hour
	defaultHandoffTTL      = 15 * time.Minute
	defaultSweepInterval   = time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		CatalogAddress:  getString(lookup, "CATALOG_ADDRESS", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		HandoffTTL:      getDuration(lookup, "HANDOFF_TTL", defaultHandoffTTL),
		SweepInterval:   getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		DetailWriteBack: getBool(lookup, "DETAIL_WRITEBACK", false),
	}

	fs := flag.NewFlagSet("rentalboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		handoffTTLStr      = cfg.HandoffTTL.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.CatalogAddress, "catalog", cfg.CatalogAddress, "Platform catalog base URL for the order seed list")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Workspace session lifetime")
	fs.StringVar(&handoffTTLStr, "handoff-ttl", handoffTTLStr, "Lifetime of unconsumed view handoffs")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between expiry sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.DetailWriteBack, "detail-writeback", cfg.DetailWriteBack, "Wire detail view decisions back to the shared order list")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.HandoffTTL, err = time.ParseDuration(handoffTTLStr); err != nil {
		return nil, fmt.Errorf("invalid handoff ttl: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.HandoffTTL <= 0 {
		cfg.HandoffTTL = defaultHandoffTTL
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
