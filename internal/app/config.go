package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Seed and Count are nil when not given on the command line.
	Seed  *float64
	Count *int
	// Operations holds the raw operation flag values. Each value may contain
	// several whitespace-delimited tokens. Nil means the flag was not given.
	Operations []string

	SeriesFile string // .hcl, .yaml, .yml or .toml file, or a directory of them
	SeriesName string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SeriesName != "" && cfg.SeriesFile == "" {
		return nil, errors.New("a series name requires a series file")
	}
	if cfg.Count != nil && *cfg.Count < 0 {
		return nil, errors.New("count must not be negative")
	}
	return &cfg, nil
}
