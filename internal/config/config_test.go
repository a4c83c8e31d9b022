package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/maichartgen/internal/ctxlog"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParse(t *testing.T) {
	t.Parallel()

	src := `
model           = "gemini-2.5-flash"
chart_dir       = "${env.CHARTS}/new"
reference_audio = "/opt/maichart/example.mp3"
api_base_url    = coalesce(env.GEMINI_PROXY, "https://fallback.example")
log_level       = lower("DEBUG")
log_format      = "json"
`
	environ := []string{"CHARTS=/srv/charts", "GEMINI_PROXY=https://proxy.example", "1BAD=ignored", "NOEQUALS"}

	f, err := Parse([]byte(src), "maichart.hcl", environ)

	require.NoError(t, err)
	expected := &File{
		Model:          "gemini-2.5-flash",
		ChartDir:       "/srv/charts/new",
		ReferenceAudio: "/opt/maichart/example.mp3",
		APIBaseURL:     "https://proxy.example",
		LogLevel:       "debug",
		LogFormat:      "json",
	}
	if diff := cmp.Diff(expected, f); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		contains string
	}{
		{name: "syntax error", src: `model = "unterminated`, contains: "failed to parse"},
		{name: "unknown attribute", src: `temperature = 2`, contains: "failed to decode"},
		{name: "missing env var", src: `model = env.NOT_SET_ANYWHERE`, contains: "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.src), "bad.hcl", nil)

			require.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultPath)

	f, err := Load(testContext(), path, false)
	require.NoError(t, err)
	require.Equal(t, &File{}, f)

	_, err = Load(testContext(), path, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(`model = "gemini-2.5-pro"`), 0o644))

	f, err := Load(testContext(), path, true)

	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-pro", f.Model)
}
