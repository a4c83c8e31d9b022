// Package stream drains a generation stream into the chart file.
//
// Fragments are written in the order they arrive, unbuffered, and each one
// advances a character counter that is reported to a Progress sink. A failure
// in the middle of the stream stops the run and leaves what was already
// written on disk; callers get an IncompleteError describing it.
package stream
