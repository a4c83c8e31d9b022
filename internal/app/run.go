package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/maichartgen/internal/apperr"
	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/ctxlog"
	"github.com/vk/maichartgen/internal/fsutil"
	"github.com/vk/maichartgen/internal/gemini"
	"github.com/vk/maichartgen/internal/prompt"
	"github.com/vk/maichartgen/internal/stream"
)

// Result describes a finished chart.
type Result struct {
	Path  string
	Stats stream.Stats
}

// Run executes one generation session. The returned error is raw; Execute
// classifies it.
func (a *App) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	envKey, _ := a.deps.LookupEnv(APIKeyEnv)
	session, err := prompt.NewCollector(a.deps.Prompter, a.config.ChartDir, envKey).Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect input: %w", err)
	}

	svc, err := a.deps.Dial(ctx, session.APIKey)
	if err != nil {
		return nil, err
	}
	if err := gemini.Guard(ctx, svc); err != nil {
		return nil, err
	}

	assets, err := chart.LoadAssets(fsutil.ResolveAsset(a.config.ReferenceAudio))
	if err != nil {
		return nil, err
	}
	req, err := chart.Assemble(ctx, assets, session.ChartDir, a.config.Model)
	if err != nil {
		return nil, err
	}
	logger.Info("Request assembled.", "model", req.Model, "thinking_budget", req.ThinkingBudget, "parts", len(req.Parts))

	stats, err := stream.NewWriter(svc, a.deps.Progress).Write(ctx, req, session.ChartDir)
	if err != nil {
		return nil, err
	}

	logger.Debug("App.Run method finished.")
	return &Result{Path: chart.OutputPath(session.ChartDir), Stats: stats}, nil
}

// Execute runs the session inside the program's failure boundary. It prints
// exactly one final line and returns the process exit code.
func (a *App) Execute(ctx context.Context) int {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "run_id", uuid.NewString())
	logger := ctxlog.FromContext(ctx)

	result, err := a.Run(ctx)

	var incomplete *stream.IncompleteError
	if errors.As(err, &incomplete) {
		logger.Warn("Partial chart left on disk.", "path", incomplete.Path, "chars", incomplete.Stats.Chars)
	}

	kind := apperr.Classify(err)
	switch kind {
	case apperr.KindNone:
		a.status.success("Chart generated: " + result.Path)
	case apperr.KindCancelled:
		logger.Debug("Run cancelled by operator.")
		a.status.info("Operation cancelled")
	case apperr.KindUser:
		var userErr *apperr.UserError
		errors.As(err, &userErr)
		logger.Error("Run failed.", "error", err)
		a.status.failure(userErr.Message)
	case apperr.KindUnexpected:
		logger.Error("Unexpected error.", "error", err, "type", fmt.Sprintf("%T", err))
		a.status.failure("Unexpected error, see the log for details")
	}

	return kind.ExitCode()
}
