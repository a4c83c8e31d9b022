package apperr

import (
	"errors"
	"fmt"
)

// Kind tags a failure for display and exit code selection.
type Kind int

const (
	// KindNone means the run succeeded.
	KindNone Kind = iota
	// KindCancelled means the operator aborted an interactive prompt.
	KindCancelled
	// KindUser is a checked precondition with an operator-facing message.
	KindUser
	// KindUnexpected covers everything else.
	KindUnexpected
)

// Exit codes of the process.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitCancelled = 130
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCancelled:
		return "cancelled"
	case KindUser:
		return "user"
	case KindUnexpected:
		return "unexpected"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ExitCode maps a Kind to the process exit code.
func (k Kind) ExitCode() int {
	switch k {
	case KindNone:
		return ExitOK
	case KindCancelled:
		return ExitCancelled
	case KindUser, KindUnexpected:
		return ExitFailure
	}
	panic(fmt.Sprintf("apperr: unhandled kind %d", int(k)))
}

// ErrCancelled is returned when the operator aborts an interactive prompt.
var ErrCancelled = errors.New("operation cancelled")

// UserError is a validated failure whose Message is fit for the operator.
// Err keeps the underlying cause for the logs.
type UserError struct {
	Message string
	Err     error
}

// User wraps err into a UserError with the given display message.
func User(message string, err error) *UserError {
	return &UserError{Message: message, Err: err}
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Classify returns the Kind of err. Cancellation wins over a user error that
// happens to wrap it.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrCancelled) {
		return KindCancelled
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return KindUser
	}
	return KindUnexpected
}
