package prompt

import (
	"context"
	"path/filepath"

	"github.com/vk/maichartgen/internal/ctxlog"
)

// DefaultChartDir is the chart directory offered when nothing else is configured.
const DefaultChartDir = "./chart"

// Session is the validated operator input for one run.
type Session struct {
	ChartDir string
	APIKey   string
}

// Collector asks for the chart directory and the API key.
type Collector struct {
	prompter   Prompter
	defaultDir string
	envKey     string
}

// NewCollector builds a Collector. envKey is the environment-sourced API key,
// empty when none is configured.
func NewCollector(p Prompter, defaultDir, envKey string) *Collector {
	if defaultDir == "" {
		defaultDir = DefaultChartDir
	}
	return &Collector{prompter: p, defaultDir: defaultDir, envKey: envKey}
}

// Collect runs both questions in order. Cancellation at either one returns
// ErrCancelled.
func (c *Collector) Collect(ctx context.Context) (Session, error) {
	logger := ctxlog.FromContext(ctx)

	dir, err := c.prompter.Ask(ctx, Field{
		Message:  "Chart directory",
		Default:  c.defaultDir,
		Validate: ValidateChartDir,
	})
	if err != nil {
		return Session{}, err
	}
	if abs, absErr := filepath.Abs(dir); absErr == nil {
		dir = abs
	}
	logger.Debug("Chart directory accepted.", "dir", dir)

	label := "Google API Key"
	if c.envKey != "" {
		label += " (ENV configured)"
	}
	key, err := c.prompter.Ask(ctx, Field{
		Message:  label,
		Mask:     '*',
		Validate: ValidateAPIKey(c.envKey),
	})
	if err != nil {
		return Session{}, err
	}
	if key == "" {
		key = c.envKey
		logger.Debug("Using API key from environment.")
	}

	return Session{ChartDir: dir, APIKey: key}, nil
}
