package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/vk/maichartgen/internal/gemini"
	"github.com/vk/maichartgen/internal/prompt"
	"github.com/vk/maichartgen/internal/stream"
)

// APIKeyEnv is the environment variable consulted for a fallback API key.
const APIKeyEnv = "GOOGLE_API_KEY"

// Deps are the external collaborators of a session.
type Deps struct {
	Prompter prompt.Prompter
	Dial     gemini.Dialer
	Progress stream.Progress
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	status status
	logger *slog.Logger
	config *Config
	deps   Deps
}

// NewApp is the constructor for the main application. Final status lines go
// to outW, logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, deps Deps) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}

	return &App{
		status: status{w: outW},
		logger: logger,
		config: cfg,
		deps:   deps,
	}
}
