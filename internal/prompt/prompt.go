package prompt

import (
	"context"

	"github.com/vk/maichartgen/internal/apperr"
)

// ErrCancelled is returned by a Prompter when the operator aborts a question.
var ErrCancelled = apperr.ErrCancelled

// Field describes a single question.
type Field struct {
	Message string
	// Default is used when the operator submits an empty answer. Ignored for
	// masked fields.
	Default string
	// Mask, when non-zero, hides the typed characters behind this rune.
	Mask rune
	// Validate rejects an answer with an error whose text is shown to the
	// operator before asking again.
	Validate func(string) error
}

// Resolve applies the field default to a raw answer.
func (f Field) Resolve(raw string) string {
	if raw == "" && f.Mask == 0 {
		return f.Default
	}
	return raw
}

// Check runs the field validation, if any.
func (f Field) Check(value string) error {
	if f.Validate == nil {
		return nil
	}
	return f.Validate(value)
}

// Prompter asks a Field until it gets a valid answer or the operator cancels.
type Prompter interface {
	Ask(ctx context.Context, f Field) (string, error)
}
