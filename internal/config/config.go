package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DirectoryConfig holds the user directory service configuration loaded
// from environment and flags.
type DirectoryConfig struct {
	RunAddress      string
	ShutdownTimeout time.Duration
	SeedData        bool
}

// OrderConfig holds the order service configuration loaded from
// environment and flags.
type OrderConfig struct {
	RunAddress         string
	UserServiceAddress string
	LookupTimeout      time.Duration
	ShutdownTimeout    time.Duration
	SeedData           bool
}

const (
	defaultDirectoryRunAddress = ":8001"
	defaultOrderRunAddress     = ":8002"
	defaultUserServiceAddress  = "http://localhost:8001"
	defaultLookupTimeout       = 5 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
)

// LoadDirectory parses directory service configuration from flags and
// environment variables.
func LoadDirectory() (*DirectoryConfig, error) {
	return loadDirectory(os.Args[1:], os.LookupEnv)
}

// LoadOrder parses order service configuration from flags and environment
// variables.
func LoadOrder() (*OrderConfig, error) {
	return loadOrder(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func loadDirectory(args []string, lookup envLookup) (*DirectoryConfig, error) {
	cfg := &DirectoryConfig{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultDirectoryRunAddress),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedData:        getBool(lookup, "SEED_DATA", true),
	}

	fs := flag.NewFlagSet("userdirectory", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.SeedData, "seed", cfg.SeedData, "Load demo records on startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func loadOrder(args []string, lookup envLookup) (*OrderConfig, error) {
	cfg := &OrderConfig{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultOrderRunAddress),
		UserServiceAddress: getString(lookup, "USER_SERVICE_URL", defaultUserServiceAddress),
		LookupTimeout:      getDuration(lookup, "LOOKUP_TIMEOUT", defaultLookupTimeout),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedData:           getBool(lookup, "SEED_DATA", true),
	}

	fs := flag.NewFlagSet("orderservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		lookupTimeoutStr   = cfg.LookupTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.UserServiceAddress, "u", cfg.UserServiceAddress, "User directory base URL")
	fs.StringVar(&lookupTimeoutStr, "lookup-timeout", lookupTimeoutStr, "Timeout budget for user lookups")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.SeedData, "seed", cfg.SeedData, "Load demo records on startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.LookupTimeout, err = time.ParseDuration(lookupTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid lookup timeout: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if parsed, err := url.Parse(cfg.UserServiceAddress); err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("user directory url must be absolute: %q", cfg.UserServiceAddress)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
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

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
