package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/maichartgen/internal/app"
	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/cli"
	"github.com/vk/maichartgen/internal/testutil"
)

// capture runs the command with a cancelling prompter and returns the
// configuration the app was built with.
func capture(t *testing.T, args ...string) (*app.Config, string, error) {
	t.Helper()

	var got *app.Config
	out := &bytes.Buffer{}
	err := cli.Execute(context.Background(), args, cli.Options{
		Stdin:  strings.NewReader(""),
		Stdout: out,
		Stderr: &bytes.Buffer{},
		NewDeps: func(cfg *app.Config, _ cli.Options) app.Deps {
			got = cfg
			return app.Deps{
				Prompter:  &testutil.ScriptedPrompter{Answers: []string{testutil.Cancel}},
				Dial:      (&testutil.FakeService{}).Dialer(nil),
				Progress:  &testutil.RecordingProgress{},
				LookupEnv: func(string) (string, bool) { return "", false },
			}
		},
	})
	return got, out.String(), err
}

func missingPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maichart.hcl")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestExecute_Flags(t *testing.T) {
	t.Parallel()

	noEnv := missingPath(t, ".env")

	testCases := []struct {
		name     string
		args     []string
		expected app.Config
	}{
		{
			name:     "defaults",
			args:     []string{"--env-file", noEnv},
			expected: app.DefaultConfig(),
		},
		{
			name: "all flags",
			args: []string{
				"--env-file", noEnv,
				"-d", "/charts/song",
				"--model=gemini-2.5-flash",
				"--reference", "/opt/example.mp3",
				"--api-base-url", "https://proxy.example",
				"--log-level=debug",
				"--log-format=json",
			},
			expected: app.Config{
				ChartDir:       "/charts/song",
				Model:          "gemini-2.5-flash",
				ReferenceAudio: "/opt/example.mp3",
				APIBaseURL:     "https://proxy.example",
				LogLevel:       "debug",
				LogFormat:      "json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// The default config path is relative; point it at an empty file.
			args := append([]string{"--config", emptyConfig(t)}, tc.args...)

			cfg, out, err := capture(t, args...)

			require.Error(t, err, "the scripted prompter cancels the run")
			require.Equal(t, 130, exitCode(t, err))
			require.Contains(t, out, "Operation cancelled")
			if diff := cmp.Diff(tc.expected, *cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecute_ConfigFileAndFlagPrecedence(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "maichart.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
model     = "from-file"
chart_dir = "/from/file"
log_level = "info"
`), 0o644))

	// --- Act ---
	cfg, _, _ := capture(t, "--config", cfgPath, "--env-file", missingPath(t, ".env"), "--model", "from-flag")

	// --- Assert ---
	require.NotNil(t, cfg)
	require.Equal(t, "from-flag", cfg.Model, "flags win over the file")
	require.Equal(t, "/from/file", cfg.ChartDir, "the file wins over defaults")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, chart.DefaultModel, app.DefaultConfig().Model)
}

func TestExecute_UsageErrors(t *testing.T) {
	t.Parallel()

	badCfg := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(badCfg, []byte(`model = `), 0o644))

	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "unknown flag", args: []string{"--this-is-not-a-valid-flag"}, contains: "unknown flag"},
		{name: "positional argument", args: []string{"extra"}, contains: "unknown command"},
		{name: "bad log level", args: []string{"--log-level=trace"}, contains: "invalid log-level"},
		{name: "explicit config missing", args: []string{"--config", missingPath(t, "nope.hcl")}, contains: "failed to read config file"},
		{name: "broken config", args: []string{"--config", badCfg}, contains: "failed to parse config file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--env-file", missingPath(t, ".env")}, tc.args...)
			if !containsFlag(args, "--config") {
				args = append(args, "--config", emptyConfig(t))
			}

			cfg, _, err := capture(t, args...)

			require.Nil(t, cfg, "the app must not be built")
			require.Equal(t, 2, exitCode(t, err))
			require.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestExecute_Help(t *testing.T) {
	t.Parallel()

	cfg, out, err := capture(t, "-h")

	require.NoError(t, err)
	require.Nil(t, cfg)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "maidata.txt")
}

func TestExecute_LoadsDotEnv(t *testing.T) {
	// Mutates the process environment, so not parallel.
	t.Setenv(app.APIKeyEnv, "")
	os.Unsetenv(app.APIKeyEnv)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(app.APIKeyEnv+"=from-dotenv\n"), 0o644))

	_, _, err := capture(t, "--env-file", envFile, "--config", emptyConfig(t))

	require.Equal(t, 130, exitCode(t, err))

	require.Equal(t, "from-dotenv", os.Getenv(app.APIKeyEnv))
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}
