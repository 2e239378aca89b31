// Package console runs the read-dispatch loop: it reads a line, splits it
// into commands and hands each command to the root route table.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/footprint-tools/roped/internal/dispatchers"
	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/usage"
)

// ErrStop ends the loop when an action returns an error wrapping it.
var ErrStop = errors.New("console stopped")

// maxReadFailures is how many consecutive failed reads end the loop.
const maxReadFailures = 3

// Console owns the shared state and dispatches every command read from its
// source against the root handler.
type Console[S any] struct {
	root   dispatchers.Handler[S]
	state  *S
	source LineSource
	out    io.Writer
	env    *dispatchers.Env
	settings
}

// New creates a console dispatching into root with exclusive access to
// state. Command output and errors go to out.
func New[S any](root dispatchers.Handler[S], state *S, source LineSource, out io.Writer, opts ...Option) *Console[S] {
	s := newSettings(opts)
	return &Console[S]{
		root:   root,
		state:  state,
		source: source,
		out:    out,
		env: &dispatchers.Env{
			Whitespace:       s.options.Whitespace,
			AdvanceOnDefault: s.options.AdvanceOnDefault,
			Logger:           s.logger,
		},
		settings: s,
	}
}

// Options returns the options the console runs with.
func (c *Console[S]) Options() Options {
	return c.options
}

// Run reads and executes lines until the source is exhausted, an action
// stops the console, or ctx is done. Errors of individual commands are
// reported and never end the loop.
func (c *Console[S]) Run(ctx context.Context) error {
	failures := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.source.ReadLine(c.options.Prompt)
		if errors.Is(err, io.EOF) {
			c.logger.Debug("console: end of input")
			return nil
		}
		if err != nil {
			failures++
			c.logger.Error("console: read failed: %v", err)
			c.report("failed to read console!")
			if failures >= maxReadFailures {
				return fmt.Errorf("reading console: %w", err)
			}
			continue
		}
		failures = 0

		if err := c.Execute(line); errors.Is(err, ErrStop) {
			c.logger.Info("console: stopped by command")
			return nil
		}
	}
}

// Execute splits the line into commands and dispatches them left to right.
// Each failure is reported on the output as it happens; the returned error
// joins them. A command stopping the console skips the rest of the line.
func (c *Console[S]) Execute(line string) error {
	var commands []input.Cursor
	for cmd := range input.SplitCommands(line, c.options.Separators) {
		if cmd = input.Trim(cmd, c.options.Whitespace); !cmd.IsEmpty() {
			commands = append(commands, cmd)
		}
	}

	var errs []error

	for i, cmd := range commands {
		n := i + 1
		if n != 1 || len(commands) > 1 {
			c.write(c.styler.Muted(fmt.Sprintf("%d", n)) + c.options.CounterSuffix)
		}

		c.logger.Debug("console: command %d: %s", n, cmd.Text())
		err := c.root.Run(c.state, dispatchers.NewRequest(cmd, c.env))
		c.record(line, n, cmd.Text(), err)

		if errors.Is(err, ErrStop) {
			return errors.Join(append(errs, err)...)
		}
		if err != nil {
			c.logger.Info("console: command %d failed: %v", n, err)
			c.report(err.Error())
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (c *Console[S]) write(text string) {
	if _, err := io.WriteString(c.out, text); err != nil {
		c.logger.Warn("console: write failed: %v", err)
	}
}

func (c *Console[S]) report(message string) {
	c.write(c.styler.Error(c.options.ErrorPrefix+message) + "\n")
}

func (c *Console[S]) record(line string, position int, command string, err error) {
	if c.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		Session:   c.session,
		Line:      line,
		Position:  position,
		Command:   command,
		Status:    domain.HistoryOK,
		Timestamp: time.Now().UTC(),
	}

	var uerr *usage.Error
	switch {
	case err == nil, errors.Is(err, ErrStop):
	case errors.As(err, &uerr) && uerr.IsInput():
		entry.Status = domain.HistoryInputError
		entry.ErrorKind = uerr.Kind.String()
		entry.Message = err.Error()
	default:
		entry.Status = domain.HistoryActionError
		entry.ErrorKind = usage.KindOf(err).String()
		entry.Message = err.Error()
	}

	if err := c.history.Record(entry); err != nil {
		c.logger.Warn("console: recording history failed: %v", err)
	}
}
