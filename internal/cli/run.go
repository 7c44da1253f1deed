package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charliek/colorcat/internal/config"
	"github.com/charliek/colorcat/internal/palette"
	"github.com/charliek/colorcat/internal/render"
	"github.com/charliek/colorcat/internal/rules"
	"github.com/charliek/colorcat/internal/source"
	"github.com/charliek/colorcat/internal/stream"
	"github.com/charliek/colorcat/internal/terminal"
)

// options holds the parsed command line
type options struct {
	keyword    string
	configPath string
	command    string
	envFile    string
	wrap       bool
	tagColors  bool
	verbose    bool

	commandSet   bool
	wrapSet      bool
	tagColorsSet bool
}

func (o *options) run(ctx context.Context, stdin *os.File, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, o.verbose)

	cfg, env, err := o.resolve()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, source.InterruptSignals...)
	defer stop()

	width := 0
	if cfg.Wrap {
		width = outputWidth(stdout)
		logger.Debug("wrapping messages", "width", width)
	}

	cmd := source.NewCommand(cfg.ToDomainSource(env), env, source.NewExecRunner(stderr), logger)
	return colorize(ctx, cfg, source.Select(stdin, cmd), stdout, width, logger)
}

// resolve loads the config file, if any, and applies the command line on top.
// It returns the config and the extra environment for the source command.
func (o *options) resolve() (*config.Config, map[string]string, error) {
	cfg := config.Default()
	configDir := ""
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		configDir = filepath.Dir(o.configPath)
	}

	if o.keyword != "" {
		cfg.Highlight = o.keyword
	}
	if o.commandSet {
		cfg.Source.Command = o.command
	}
	if o.wrapSet {
		cfg.Wrap = o.wrap
	}
	if o.tagColorsSet {
		cfg.TagColors = o.tagColors
	}

	// A --env-file is relative to the working directory, not the config
	envFile, baseDir := cfg.Source.EnvFile, configDir
	if o.envFile != "" {
		envFile, baseDir = o.envFile, ""
	}

	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	env, err := config.LoadSourceEnv(envFile, cfg.Source.Env, baseDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, env, nil
}

// colorize prints the banner, if there is a keyword, and then every line of
// src until it ends or ctx is cancelled.
func colorize(ctx context.Context, cfg *config.Config, src source.Source, out io.Writer, width int, logger *slog.Logger) error {
	set, err := rules.Compile(cfg.Rules)
	if err != nil {
		return err
	}

	renderer := render.New(palette.NewAllocator(cfg.Tags), render.Options{
		Keyword:   cfg.Highlight,
		TagColors: cfg.TagColors,
		Rules:     set,
		Width:     width,
	})
	driver := stream.NewDriver(renderer, out, logger)

	if banner := renderer.Banner(); banner != "" {
		if err := driver.WriteLine(banner); err != nil {
			return err
		}
	}

	return driver.Run(ctx, src)
}

// outputWidth is the width of the terminal out writes to
func outputWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		return terminal.Size(f.Fd()).Width
	}
	return terminal.Default.Width
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
