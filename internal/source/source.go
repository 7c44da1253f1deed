// Package source supplies the raw log stream: either a reader such as stdin,
// or the stdout of a command run through the shell.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charliek/colorcat/internal/constants"
	"github.com/charliek/colorcat/internal/domain"
	"github.com/charliek/colorcat/internal/terminal"
)

// Source opens a stream of log text. Closing the stream releases whatever
// produced it.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Select returns cmd when stdin is an interactive terminal and a reader
// over stdin otherwise.
func Select(stdin *os.File, cmd Source) Source {
	if terminal.IsTerminal(stdin.Fd()) {
		return cmd
	}
	return NewReader("stdin", stdin)
}

// Reader is a Source over an existing reader. Close does not close it.
type Reader struct {
	name string
	r    io.Reader
}

// NewReader creates a Source reading from r
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

// Name returns the source name
func (s *Reader) Name() string {
	return s.name
}

// Open returns the underlying reader
func (s *Reader) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// Command is a Source that runs a shell command and reads its stdout
type Command struct {
	config      domain.SourceConfig
	env         map[string]string
	runner      ProcessRunner
	logger      *slog.Logger
	stopTimeout time.Duration
}

// NewCommand creates a command source. env is added to the inherited
// environment.
func NewCommand(config domain.SourceConfig, env map[string]string, runner ProcessRunner, logger *slog.Logger) *Command {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Command{
		config:      config,
		env:         env,
		runner:      runner,
		logger:      logger,
		stopTimeout: constants.DefaultStopTimeout,
	}
}

// Name returns the command line
func (c *Command) Name() string {
	return c.config.Command
}

// Open starts the command
func (c *Command) Open(ctx context.Context) (io.ReadCloser, error) {
	proc, err := c.runner.Start(ctx, c.config, c.env)
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", c.config.Command, err)
	}
	c.logger.Debug("source command started", "cmd", c.config.Command, "pid", proc.PID())
	return &commandStream{
		proc:    proc,
		logger:  c.logger,
		timeout: c.stopTimeout,
	}, nil
}

// commandStream reads a process's stdout and stops the process on Close
type commandStream struct {
	proc    Process
	logger  *slog.Logger
	timeout time.Duration
}

func (s *commandStream) Read(p []byte) (int, error) {
	return s.proc.Stdout().Read(p)
}

// Close sends SIGTERM to the process group, then SIGKILL if it has not
// exited within the stop timeout
func (s *commandStream) Close() error {
	done := make(chan error, 1)
	if err := s.proc.Signal(sigterm); err != nil {
		// Usually the process has already exited at end of stream
		s.logger.Debug("SIGTERM failed (process may have already exited)", "error", err)
	}
	go func() {
		done <- s.proc.Wait()
	}()

	select {
	case err := <-done:
		s.logger.Debug("source command exited", "pid", s.proc.PID(), "error", err)
		return nil
	case <-time.After(s.timeout):
	}

	s.logger.Warn("sending SIGKILL to source command (graceful shutdown timed out)", "pid", s.proc.PID())
	if err := s.proc.Signal(sigkill); err != nil {
		return fmt.Errorf("killing source command: %w", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
	}
	return nil
}
