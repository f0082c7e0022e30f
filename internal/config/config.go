package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/justsurfingit/staffing-crm/internal/jobid"
)

const (
	ScanCategory = "category"
	ScanAll      = "all"
)

type Config struct {
	Addr            string        `env:"CRM_ADDR" envDefault:":8080"`
	DatabaseURL     string        `env:"CRM_DATABASE_URL" envDefault:"host=localhost user=postgres password=password dbname=staffing_crm port=5432 sslmode=disable"`
	AllowedOrigins  []string      `env:"CRM_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout time.Duration `env:"CRM_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"CRM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CRM_LOG_FORMAT" envDefault:"text"`

	JobID JobIDConfig
}

// JobIDConfig controls job requirement identifier allocation.
type JobIDConfig struct {
	TenantPrefix string `env:"CRM_JOBID_PREFIX" envDefault:"DZ"`
	FallbackCode string `env:"CRM_JOBID_FALLBACK_CODE" envDefault:"GN"`
	// MaxAttempts bounds how often a create is retried after another writer
	// took the same identifier.
	MaxAttempts int `env:"CRM_JOBID_MAX_ATTEMPTS" envDefault:"3"`
	// ScanMode is "category" to read only the target category's identifiers
	// or "all" to read every identifier and filter in memory.
	ScanMode string `env:"CRM_JOBID_SCAN_MODE" envDefault:"category"`
}

// Load reads envFile (if it exists) into the process environment and then
// parses the CRM_* variables. Variables already set take precedence over the
// file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := jobid.ValidatePrefix(c.JobID.TenantPrefix); err != nil {
		return fmt.Errorf("CRM_JOBID_PREFIX: %w", err)
	}
	if err := jobid.ValidateCode(jobid.Code(c.JobID.FallbackCode)); err != nil {
		return fmt.Errorf("CRM_JOBID_FALLBACK_CODE: %w", err)
	}
	if c.JobID.MaxAttempts < 1 {
		return fmt.Errorf("CRM_JOBID_MAX_ATTEMPTS must be at least 1, got %d", c.JobID.MaxAttempts)
	}

	switch c.JobID.ScanMode {
	case ScanCategory, ScanAll:
	default:
		return fmt.Errorf("CRM_JOBID_SCAN_MODE must be %q or %q, got %q", ScanCategory, ScanAll, c.JobID.ScanMode)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("CRM_LOG_FORMAT must be \"text\" or \"json\", got %q", c.LogFormat)
	}

	return nil
}
