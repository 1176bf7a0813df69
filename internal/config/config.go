// Package config provides centralized configuration management for the seeder.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
//
// With no environment set, the defaults reproduce the plain demo run: SQLite
// files in the working directory, ten workers, text report on stdout.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/JonMunkholm/seeder/internal/report"
	"github.com/JonMunkholm/seeder/internal/storage"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Storage StorageConfig
	Pool    PoolConfig
	Report  ReportConfig
	Metrics MetricsConfig
	Logging LoggingConfig
}

// StorageConfig holds database settings.
type StorageConfig struct {
	// Driver selects the backend: sqlite or postgres (default: sqlite)
	Driver string `env:"SEED_STORAGE_DRIVER" envDefault:"sqlite"`

	// DataDir is the directory holding one SQLite file per table (default: .)
	DataDir string `env:"SEED_DATA_DIR" envDefault:"."`

	// DatabaseURL is the PostgreSQL connection string (required for postgres)
	DatabaseURL string `env:"DATABASE_URL"`

	// BusyTimeout bounds how long a connection waits on a lock (default: 5s)
	BusyTimeout time.Duration `env:"SEED_BUSY_TIMEOUT" envDefault:"5s"`

	// ResetTimeout is the maximum duration for the schema reset (default: 30s)
	ResetTimeout time.Duration `env:"SEED_RESET_TIMEOUT" envDefault:"30s"`
}

// PoolConfig holds worker pool settings.
type PoolConfig struct {
	// Workers is the number of records processed concurrently (default: 10)
	Workers int `env:"SEED_WORKERS" envDefault:"10"`
}

// ReportConfig holds optional report outputs.
type ReportConfig struct {
	HTMLPath string `env:"REPORT_HTML_PATH"`

	S3Bucket          string `env:"REPORT_S3_BUCKET"`
	S3Prefix          string `env:"REPORT_S3_PREFIX" envDefault:"seeder"`
	S3Region          string `env:"REPORT_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint        string `env:"REPORT_S3_ENDPOINT"`
	S3PathStyle       bool   `env:"REPORT_S3_PATH_STYLE"`
	S3AccessKeyID     string `env:"REPORT_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"REPORT_S3_SECRET_ACCESS_KEY"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// Textfile is where the Prometheus text exposition is written after a run
	Textfile string `env:"METRICS_TEXTFILE"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from the process environment and validates it.
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom reads configuration from the given variables instead of the
// process environment. Unset variables take their defaults.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Storage validation
	switch storage.Driver(c.Storage.Driver) {
	case storage.DriverSQLite:
		if c.Storage.DataDir == "" {
			errs = append(errs, "SEED_DATA_DIR must not be empty")
		}
	case storage.DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, "DATABASE_URL is required when SEED_STORAGE_DRIVER=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("SEED_STORAGE_DRIVER (%q) must be sqlite or postgres", c.Storage.Driver))
	}
	if c.Storage.BusyTimeout <= 0 {
		errs = append(errs, "SEED_BUSY_TIMEOUT must be positive")
	}
	if c.Storage.ResetTimeout <= 0 {
		errs = append(errs, "SEED_RESET_TIMEOUT must be positive")
	}

	// Pool validation
	if c.Pool.Workers <= 0 {
		errs = append(errs, "SEED_WORKERS must be positive")
	}

	// Report validation
	if (c.Report.S3AccessKeyID == "") != (c.Report.S3SecretAccessKey == "") {
		errs = append(errs, "REPORT_S3_ACCESS_KEY_ID and REPORT_S3_SECRET_ACCESS_KEY must be set together")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%s) must be debug, info, warn, or error", c.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%s) must be text or json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// StorageOptions converts the storage settings into storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver:      storage.Driver(c.Storage.Driver),
		DataDir:     c.Storage.DataDir,
		DatabaseURL: c.Storage.DatabaseURL,
		BusyTimeout: c.Storage.BusyTimeout,
	}
}

// ArchiveEnabled reports whether reports should be archived to S3.
func (c *ReportConfig) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// S3Config converts the archive settings into report.S3Config.
func (c *ReportConfig) S3Config() report.S3Config {
	return report.S3Config{
		Bucket:          c.S3Bucket,
		Prefix:          c.S3Prefix,
		Region:          c.S3Region,
		Endpoint:        c.S3Endpoint,
		PathStyle:       c.S3PathStyle,
		AccessKeyID:     c.S3AccessKeyID,
		SecretAccessKey: c.S3SecretAccessKey,
	}
}
