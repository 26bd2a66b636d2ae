package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidSeed      = errors.New("invalid seed")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Config struct {
	// empty means seed from entropy
	Seed      string `env:"ODDS_SEED"`
	Workers   int    `env:"ODDS_WORKERS" envDefault:"0"`
	LogLevel  string `env:"ODDS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ODDS_LOG_FORMAT" envDefault:"console"`
	Profile   bool   `env:"ODDS_PROFILE" envDefault:"false"`
	NoColor   bool   `env:"NO_COLOR"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process
// environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that flags may have overridden after loading.
func (c *Config) Validate() error {
	if _, _, err := c.SeedValue(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// SeedValue returns the configured seed and whether one was set. Decimal and
// 0x-prefixed hex values are accepted.
func (c *Config) SeedValue() (uint64, bool, error) {
	if c.Seed == "" {
		return 0, false, nil
	}
	seed, err := strconv.ParseUint(c.Seed, 0, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidSeed, c.Seed)
	}
	return seed, true, nil
}
