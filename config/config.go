// Package config loads the validator's runtime settings from the environment.
//
// Values come from process environment variables, optionally seeded from a
// `.env` file through github.com/joho/godotenv, and are parsed into Config
// with github.com/caarlos0/env/v11 struct tags:
//
//	BSSEQ_THREADS=4
//	BSSEQ_LOG_LEVEL=debug
//	BSSEQ_LOG_FORMAT=json
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings a host needs to build a validator.
type Config struct {
	// Threads is the default number of column-scanning workers.
	Threads int `env:"BSSEQ_THREADS" envDefault:"1"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"BSSEQ_LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json.
	LogFormat string `env:"BSSEQ_LOG_FORMAT" envDefault:"text"`
}

// Load reads the default .env file when present (a missing file is not an
// error) and parses the process environment into a validated Config.
func Load() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFile loads the given .env files (earlier files win, existing process
// variables are never overwritten) and then parses the environment.
func LoadFile(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	return parse(env.Options{})
}

// Parse builds a Config from an explicit variable map instead of the process
// environment. Missing keys take their defaults.
func Parse(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects non-positive thread counts and unknown log settings.
func (c Config) Validate() error {
	if c.Threads <= 0 {
		return fmt.Errorf("%w: BSSEQ_THREADS must be > 0, got %d", ErrInvalidConfig, c.Threads)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown BSSEQ_LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown BSSEQ_LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
