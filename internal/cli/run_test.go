package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charliek/colorcat/internal/config"
	"github.com/charliek/colorcat/internal/constants"
	"github.com/charliek/colorcat/internal/domain"
	"github.com/charliek/colorcat/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestColorize(t *testing.T) {
	t.Run("renders lines and ends with an empty line", func(t *testing.T) {
		in := "--------- beginning of main\n" +
			"01-02 03:04:05.678  1234  5678 I ActivityManager: Start proc\n"
		var out bytes.Buffer

		err := colorize(context.Background(), config.Default(), source.NewReader("test", strings.NewReader(in)), &out, 0, discardLogger())
		require.NoError(t, err)

		want := "--------- beginning of main\n" +
			"\x1b[36;22m03:04:05.678 1234/5678\x1b[0m " +
			"\x1b[36;22m" + strings.Repeat(" ", 10) + "ActivityManager \x1b[0m" +
			"\x1b[30;42;22m I \x1b[0m " +
			" Start proc\n" +
			"\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("banner comes first with a keyword", func(t *testing.T) {
		cfg := config.Default()
		cfg.Highlight = "GC"
		var out bytes.Buffer

		err := colorize(context.Background(), cfg, source.NewReader("test", strings.NewReader("")), &out, 0, discardLogger())
		require.NoError(t, err)

		assert.Equal(t, "Highlight Keyword: \x1b[37;41;1mGC\x1b[0m\n\n", out.String())
	})

	t.Run("unknown severity stops quietly", func(t *testing.T) {
		in := "plain\n" +
			"01-02 03:04:05.678  1234  5678 X Tag: never shown\n" +
			"after\n"
		var out bytes.Buffer

		err := colorize(context.Background(), config.Default(), source.NewReader("test", strings.NewReader(in)), &out, 0, discardLogger())
		require.ErrorIs(t, err, domain.ErrUnknownSeverity)
		assert.Equal(t, domain.ExitOK, domain.ExitCode(err))
		assert.Equal(t, "plain\n", out.String())
	})

	t.Run("rules rewrite messages", func(t *testing.T) {
		cfg := config.Default()
		cfg.Rules = []domain.Rule{{Pattern: "secret=\\w+", Replace: "secret=***"}}
		in := "01-02 03:04:05.678  1234  5678 D Auth: secret=hunter2\n"
		var out bytes.Buffer

		err := colorize(context.Background(), cfg, source.NewReader("test", strings.NewReader(in)), &out, 0, discardLogger())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "secret=***")
		assert.NotContains(t, out.String(), "hunter2")
	})

	t.Run("invalid rules fail before reading", func(t *testing.T) {
		cfg := config.Default()
		cfg.Rules = []domain.Rule{{Pattern: "("}}
		var out bytes.Buffer

		err := colorize(context.Background(), cfg, source.NewReader("test", strings.NewReader("x\n")), &out, 0, discardLogger())
		require.ErrorIs(t, err, domain.ErrInvalidPattern)
		assert.Empty(t, out.String())
	})

	t.Run("cancelled context writes nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		pr, pw := io.Pipe()
		defer pw.Close()
		var out bytes.Buffer

		err := colorize(ctx, config.Default(), source.NewReader("test", pr), &out, 0, discardLogger())
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestOptions_Resolve(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		opts := &options{command: constants.DefaultCommand}
		cfg, env, err := opts.resolve()
		require.NoError(t, err)

		assert.Equal(t, constants.DefaultCommand, cfg.Source.Command)
		assert.Empty(t, cfg.Highlight)
		assert.False(t, cfg.Wrap)
		assert.Empty(t, env)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "colorcat.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
highlight: GC
wrap: true
source:
  command: adb -e logcat -v threadtime
  env_file: device.env
  env:
    INLINE: "1"
`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "device.env"), []byte("ANDROID_SERIAL=emulator-5554\n"), 0644))

		opts := &options{
			configPath: path,
			keyword:    "Choreographer",
			command:    "cat device.log",
			commandSet: true,
			wrap:       false,
			wrapSet:    true,
		}
		cfg, env, err := opts.resolve()
		require.NoError(t, err)

		assert.Equal(t, "Choreographer", cfg.Highlight)
		assert.Equal(t, "cat device.log", cfg.Source.Command)
		assert.False(t, cfg.Wrap)
		assert.Equal(t, "emulator-5554", env["ANDROID_SERIAL"])
		assert.Equal(t, "1", env["INLINE"])
	})

	t.Run("env-file flag is relative to the working directory", func(t *testing.T) {
		dir := t.TempDir()
		envPath := filepath.Join(dir, "flag.env")
		require.NoError(t, os.WriteFile(envPath, []byte("FROM_FLAG=yes\n"), 0644))

		opts := &options{command: constants.DefaultCommand, envFile: envPath}
		_, env, err := opts.resolve()
		require.NoError(t, err)
		assert.Equal(t, "yes", env["FROM_FLAG"])
	})

	t.Run("missing config file", func(t *testing.T) {
		opts := &options{configPath: "/nonexistent/colorcat.yaml"}
		_, _, err := opts.resolve()
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	t.Run("empty command is rejected", func(t *testing.T) {
		opts := &options{command: "", commandSet: true}
		_, _, err := opts.resolve()
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestOutputWidth(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, constants.DefaultTerminalWidth, outputWidth(&buf))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
