package app

import (
	"fmt"

	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/config"
	"github.com/vk/maichartgen/internal/prompt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ChartDir is the default offered by the directory prompt.
	ChartDir       string
	Model          string
	ReferenceAudio string
	APIBaseURL     string

	LogFormat string
	LogLevel  string
}

// DefaultReferenceAudio is looked up next to the executable.
const DefaultReferenceAudio = "example.mp3"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ChartDir:       prompt.DefaultChartDir,
		Model:          chart.DefaultModel,
		ReferenceAudio: DefaultReferenceAudio,
		LogFormat:      "text",
		LogLevel:       "warn",
	}
}

// Apply overlays the non-empty values of a config file.
func (c Config) Apply(f *config.File) Config {
	if f == nil {
		return c
	}
	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&c.ChartDir, f.ChartDir)
	overlay(&c.Model, f.Model)
	overlay(&c.ReferenceAudio, f.ReferenceAudio)
	overlay(&c.APIBaseURL, f.APIBaseURL)
	overlay(&c.LogFormat, f.LogFormat)
	overlay(&c.LogLevel, f.LogLevel)
	return c
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model cannot be empty")
	}
	if cfg.ReferenceAudio == "" {
		return nil, fmt.Errorf("reference audio path cannot be empty")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
