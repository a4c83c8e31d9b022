package chart

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/maichartgen/internal/apperr"
	"github.com/vk/maichartgen/internal/ctxlog"
)

// Assets are the fixed inputs bundled with the tool.
type Assets struct {
	Instructions   string
	ReferenceAudio []byte
}

// LoadAssets reads the reference song from referencePath and pairs it with
// the embedded instructions. A missing reference is an installation problem
// the operator can fix, so it is reported as a user error.
func LoadAssets(referencePath string) (Assets, error) {
	data, err := os.ReadFile(referencePath)
	if err != nil {
		return Assets{}, apperr.User(fmt.Sprintf("reference audio %s is not readable", referencePath), err)
	}
	return Assets{Instructions: Instructions(), ReferenceAudio: data}, nil
}

// Assemble reads the track in dir and builds the request for model. The
// track is validated when collected, but a failed read here is still an
// error.
func Assemble(ctx context.Context, assets Assets, dir, model string) (*Request, error) {
	logger := ctxlog.FromContext(ctx)

	if model == "" {
		model = DefaultModel
	}

	trackPath := TrackPath(dir)
	track, err := os.ReadFile(trackPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read track %s: %w", trackPath, err)
	}
	logger.Debug("Track loaded.", "path", trackPath, "bytes", len(track))

	return &Request{
		Model:          model,
		ThinkingBudget: ThinkingBudget,
		Parts: []Part{
			{Text: assets.Instructions},
			{MIMEType: AudioMIMEType, Data: assets.ReferenceAudio},
			{MIMEType: AudioMIMEType, Data: track},
		},
	}, nil
}
