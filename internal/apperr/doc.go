// Package apperr defines the failure taxonomy of a generation session.
//
// Every error that reaches the top of the program falls into exactly one
// Kind. The Kind decides the process exit code and how the failure is shown
// to the operator: cancellations are informational, user errors carry a
// message that is already fit for display, and anything else is logged in
// full and reported generically.
package apperr
