// Package config resolves refactor engine settings from defaults, an
// optional .lcr.kdl project file, and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names. Values set here win over the project file.
const (
	EnvMaxRetries  = "LCR_MAX_RETRIES"
	EnvRetryDelay  = "LCR_RETRY_DELAY"
	EnvReadRetries = "LCR_READ_RETRIES"
	EnvMaxWorkers  = "LCR_MAX_WORKERS"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// MaxRetries is how many times a locked destination is retried after
	// the first attempt. Zero means a single attempt.
	MaxRetries uint

	// RetryDelay is the pause between lock retries.
	RetryDelay time.Duration

	// ReadRetries bounds re-reads of a source file that is briefly locked
	// by another process.
	ReadRetries uint

	// MaxWorkers caps concurrent file rewrites in batch mode.
	MaxWorkers int

	// VerifyAfterWrite runs an advisory syntax check on each written file.
	VerifyAfterWrite bool

	// Exclude holds glob patterns removed from batch file resolution,
	// on top of the built-in exclusions.
	Exclude []string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxRetries:       3,
		RetryDelay:       100 * time.Millisecond,
		ReadRetries:      3,
		MaxWorkers:       4,
		VerifyAfterWrite: true,
	}
}

// Load resolves configuration for a project root: defaults, then .lcr.kdl
// if present, then environment overrides. A malformed project file is an
// error; a missing one is not.
func Load(projectRoot string) (*Config, error) {
	cfg := Default()

	fileCfg, err := LoadKDL(projectRoot)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg = fileCfg
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMaxRetries); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.MaxRetries = uint(n)
		}
	}
	if v := os.Getenv(EnvRetryDelay); v != "" {
		// Accepts either a bare number of seconds ("0.1") or a Go
		// duration string ("100ms").
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs >= 0 {
			c.RetryDelay = time.Duration(secs * float64(time.Second))
		} else if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.RetryDelay = d
		}
	}
	if v := os.Getenv(EnvReadRetries); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.ReadRetries = uint(n)
		}
	}
	if v := os.Getenv(EnvMaxWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxWorkers = n
		}
	}
}

func (c *Config) validate() error {
	if c.MaxWorkers < 1 {
		return fmt.Errorf("max_workers must be at least 1, got %d", c.MaxWorkers)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative")
	}
	return nil
}
