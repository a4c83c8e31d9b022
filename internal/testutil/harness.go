package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/ctxlog"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Context returns a context carrying a debug logger that writes into a
// buffer owned by the test.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, _ := ContextWithLogs(t)
	return ctx
}

// ContextWithLogs is Context that also returns the captured log output.
func ContextWithLogs(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() {
		if os.Getenv("MAICHART_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return ctxlog.WithLogger(context.Background(), logger), logs
}

// TrackContent is the fake audio written by NewChartDir.
var TrackContent = []byte("ID3\x04\x00fake-track")

// NewChartDir creates root/name holding a track file and returns its path.
func NewChartDir(t *testing.T, root, name string) string {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, chart.TrackFile), TrackContent, 0o644))
	return dir
}

// NewReferenceAudio writes a fake reference song and returns its path.
func NewReferenceAudio(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "example.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3\x04\x00fake-reference"), 0o644))
	return path
}
