// Package stream drives the read, render, write loop.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charliek/colorcat/internal/constants"
	"github.com/charliek/colorcat/internal/domain"
	"github.com/charliek/colorcat/internal/source"
)

// LineRenderer turns one raw line into output. An error stops the stream.
type LineRenderer interface {
	Line(raw string) (string, error)
}

// Driver copies lines from a source to an output through a renderer, one
// line at a time and in order. All rendering happens on the goroutine that
// calls Run.
type Driver struct {
	renderer LineRenderer
	out      *bufio.Writer
	logger   *slog.Logger
}

// NewDriver creates a Driver writing to out
func NewDriver(renderer LineRenderer, out io.Writer, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		renderer: renderer,
		out:      bufio.NewWriter(out),
		logger:   logger,
	}
}

// WriteLine writes text and a newline and flushes
func (d *Driver) WriteLine(text string) error {
	if _, err := d.out.WriteString(text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := d.out.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := d.out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Run processes src until it ends, ctx is cancelled or a line cannot be
// rendered.
//
// At end of stream one empty line is written and Run returns nil. When ctx
// is cancelled Run returns nil without writing anything more. A render error
// (an unknown severity) is returned without writing the offending line, as
// is any read or write error.
func (d *Driver) Run(ctx context.Context, src source.Source) error {
	r, err := src.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			d.logger.Warn("closing source", "source", src.Name(), "error", err)
		}
	}()
	d.logger.Debug("reading", "source", src.Name())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, r, lines, readErr)

	count := 0
	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("interrupted", "lines", count)
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading %s: %w", src.Name(), err)
				}
				d.logger.Debug("end of stream", "lines", count)
				return d.WriteLine("")
			}
			if ctx.Err() != nil {
				d.logger.Debug("interrupted", "lines", count)
				return nil
			}
			count++

			rendered, err := d.renderer.Line(line)
			if err != nil {
				if errors.Is(err, domain.ErrUnknownSeverity) {
					d.logger.Debug("stopping at unrecognized line", "line", count, "error", err)
				}
				return fmt.Errorf("line %d: %w", count, err)
			}
			if err := d.WriteLine(rendered); err != nil {
				return err
			}
		}
	}
}

// readLines sends each line of r, without its '\n', until r is exhausted.
// A '\r' before the '\n' stays part of the line and lines of any length are
// read whole. After ctx is done it stops at the next line boundary; a Read
// already blocked on r stays blocked until r returns. It closes lines when it
// returns and leaves the read error, if any, in errc.
func readLines(ctx context.Context, r io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)

	br := bufio.NewReaderSize(r, constants.ReaderBufferSize)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			select {
			case lines <- strings.TrimSuffix(line, "\n"):
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			errc <- err
			return
		}
	}
}
