package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PuzzlePath     string // hcl file or directory
	VocabularyPath string // fallback for puzzles that name no vocabulary

	OutputFormat string
	LogFormat    string
	LogLevel     string
	WorkerCount  int
}

// Accepted values for the enumerated Config fields.
var (
	OutputFormats = []string{"text", "json"}
	LogFormats    = []string{"text", "json"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
)

// NewConfig validates cfg and returns a copy of it. Empty formats and level
// fall back to "text", "text" and "info", and a zero WorkerCount to 1.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PuzzlePath == "" {
		return nil, errors.New("PuzzlePath is a required configuration field and cannot be empty")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 1
	}

	if err := oneOf("output format", cfg.OutputFormat, OutputFormats); err != nil {
		return nil, err
	}
	if err := oneOf("log format", cfg.LogFormat, LogFormats); err != nil {
		return nil, err
	}
	if err := oneOf("log level", cfg.LogLevel, LogLevels); err != nil {
		return nil, err
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("invalid worker count %d: must be at least 1", cfg.WorkerCount)
	}

	return &cfg, nil
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %q", field, value, allowed)
}
