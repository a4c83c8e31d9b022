package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vk/maichartgen/internal/app"
	"github.com/vk/maichartgen/internal/apperr"
	"github.com/vk/maichartgen/internal/config"
	"github.com/vk/maichartgen/internal/ctxlog"
	"github.com/vk/maichartgen/internal/gemini"
	"github.com/vk/maichartgen/internal/prompt"
	"github.com/vk/maichartgen/internal/stream"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options wire the command to its environment.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// NewDeps builds the session collaborators. Nil selects the real ones.
	NewDeps func(cfg *app.Config, o Options) app.Deps
}

type flags struct {
	configPath string
	envFile    string
	dir        string
	model      string
	reference  string
	baseURL    string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the maichartgen command.
func NewRootCommand(o Options) *cobra.Command {
	var f flags
	defaults := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "maichartgen",
		Short: "Generate a maimai chart for a song with Gemini",
		Long: `maichartgen asks for a chart directory containing track.mp3 and a Google API key,
sends the track to Gemini together with a reference example, and streams the
generated chart into maidata.txt in the same directory.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return &ExitError{Code: apperr.ExitUsage, Message: err.Error()}
			}

			newDeps := o.NewDeps
			if newDeps == nil {
				newDeps = defaultDeps
			}
			a := app.NewApp(o.Stdout, o.Stderr, cfg, newDeps(cfg, o))

			if code := a.Execute(cmd.Context()); code != apperr.ExitOK {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
	cmd.SetIn(o.Stdin)
	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: apperr.ExitUsage, Message: err.Error()}
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", config.DefaultPath, "Path to the HCL config file.")
	fl.StringVar(&f.envFile, "env-file", ".env", "Dotenv file loaded before reading "+app.APIKeyEnv+".")
	fl.StringVarP(&f.dir, "dir", "d", defaults.ChartDir, "Default answer for the chart directory prompt.")
	fl.StringVarP(&f.model, "model", "m", defaults.Model, "Gemini model to use.")
	fl.StringVar(&f.reference, "reference", defaults.ReferenceAudio, "Reference example audio.")
	fl.StringVar(&f.baseURL, "api-base-url", "", "Override the Gemini API endpoint, e.g. for a proxy.")
	fl.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fl.StringVar(&f.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f *flags) (*app.Config, error) {
	if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", f.envFile, err)
	}

	// The app logger does not exist yet; file loading logs to the default one.
	ctx := ctxlog.WithLogger(cmd.Context(), slog.Default())
	file, err := config.Load(ctx, f.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	cfg := app.DefaultConfig().Apply(file)
	fl := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fl.Changed(name) {
			*dst = v
		}
	}
	set("dir", &cfg.ChartDir, f.dir)
	set("model", &cfg.Model, f.model)
	set("reference", &cfg.ReferenceAudio, f.reference)
	set("api-base-url", &cfg.APIBaseURL, f.baseURL)
	set("log-level", &cfg.LogLevel, f.logLevel)
	set("log-format", &cfg.LogFormat, f.logFormat)

	return app.NewConfig(cfg)
}

func defaultDeps(cfg *app.Config, o Options) app.Deps {
	return app.Deps{
		Prompter: prompt.NewTeaPrompter(o.Stdin, o.Stdout),
		Dial:     gemini.NewDialer(gemini.Options{BaseURL: cfg.APIBaseURL}),
		Progress: stream.NewBar(o.Stderr, "Charting"),
	}
}

// Execute runs the root command with args. Usage problems come back as an
// ExitError with code 2, session failures as an ExitError with the session's
// exit code and no message, since the session has already reported them.
func Execute(ctx context.Context, args []string, o Options) error {
	cmd := NewRootCommand(o)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: apperr.ExitUsage, Message: err.Error()}
}
