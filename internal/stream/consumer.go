package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/ctxlog"
	"github.com/vk/maichartgen/internal/gemini"
)

// Progress receives the growth of the output as it happens.
type Progress interface {
	// Start begins reporting with an unknown total.
	Start()
	// Add advances the count by n characters.
	Add(n int)
	// Stop ends reporting.
	Stop()
}

// Stats summarize a consumed stream.
type Stats struct {
	Fragments int
	// Chars counts Unicode code points written.
	Chars    int
	Duration time.Duration
}

// IncompleteError reports a stream that failed after the chart file was
// created. The file at Path keeps the Stats.Chars characters written so far.
type IncompleteError struct {
	Path  string
	Stats Stats
	Err   error
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("chart %s is incomplete after %d characters: %v", e.Path, e.Stats.Chars, e.Err)
}

func (e *IncompleteError) Unwrap() error {
	return e.Err
}

// Consume reads s until io.EOF, writing every fragment to w and reporting its
// length to p. It returns on the first read or write error.
func Consume(s gemini.Stream, w io.Writer, p Progress) (Stats, error) {
	var stats Stats
	for {
		text, err := s.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		stats.Fragments++
		if text == "" {
			continue
		}
		if _, err := io.WriteString(w, text); err != nil {
			return stats, fmt.Errorf("failed to write fragment %d: %w", stats.Fragments, err)
		}
		n := utf8.RuneCountInString(text)
		stats.Chars += n
		p.Add(n)
	}
}

// StreamStarter opens a generation stream.
type StreamStarter interface {
	GenerateStream(ctx context.Context, req *chart.Request) (gemini.Stream, error)
}

// Writer submits a request and writes the answer into a chart directory.
type Writer struct {
	starter  StreamStarter
	progress Progress
	now      func() time.Time
}

// NewWriter returns a Writer reporting to progress.
func NewWriter(starter StreamStarter, progress Progress) *Writer {
	return &Writer{starter: starter, progress: progress, now: time.Now}
}

// Write submits req, creates dir/maidata.txt and fills it from the stream.
// The progress sink is stopped and the file closed on every path.
func (w *Writer) Write(ctx context.Context, req *chart.Request, dir string) (Stats, error) {
	logger := ctxlog.FromContext(ctx)

	s, err := w.starter.GenerateStream(ctx, req)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to start generation: %w", err)
	}
	defer s.Close()

	path := chart.OutputPath(dir)
	f, err := os.Create(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create chart file: %w", err)
	}
	logger.Debug("Chart file created.", "path", path)

	start := w.now()
	w.progress.Start()
	stats, err := Consume(s, f, w.progress)
	w.progress.Stop()
	stats.Duration = w.now().Sub(start)

	closeErr := f.Close()
	if err != nil {
		return stats, &IncompleteError{Path: path, Stats: stats, Err: err}
	}
	if closeErr != nil {
		return stats, &IncompleteError{Path: path, Stats: stats, Err: fmt.Errorf("failed to close chart file: %w", closeErr)}
	}

	logger.Info("Chart written.", "path", path, "fragments", stats.Fragments, "chars", stats.Chars, "duration", stats.Duration)
	return stats, nil
}
