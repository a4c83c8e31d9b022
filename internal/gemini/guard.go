package gemini

import (
	"context"

	"github.com/vk/maichartgen/internal/apperr"
	"github.com/vk/maichartgen/internal/ctxlog"
)

// UnavailableMessage is shown when the pre-flight probe fails.
const UnavailableMessage = "Google API unavailable, check your network/proxy and API key"

// Prober checks that the service is reachable and accepts the credential.
type Prober interface {
	Probe(ctx context.Context) error
}

// Guard runs the probe once. Any failure is logged in full and returned as
// a user error carrying UnavailableMessage.
func Guard(ctx context.Context, p Prober) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Probing Gemini API.")

	if err := p.Probe(ctx); err != nil {
		logger.Error("Gemini API probe failed.", "error", err)
		return apperr.User(UnavailableMessage, err)
	}

	logger.Debug("Gemini API reachable.")
	return nil
}
