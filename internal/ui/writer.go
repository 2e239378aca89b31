// Package ui holds the terminal-facing output and input helpers.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/footprint-tools/roped/internal/domain"
	"golang.org/x/term"
)

const defaultPager = "less -FRSX"

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter function.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager shows content through a pager when the output is a terminal, and
// prints it directly otherwise. The pager is, in order: the override, the
// pager config key, $PAGER, then less. "cat" bypasses paging.
func (w *Writer) Pager(content string) {
	if !w.isTerminal() {
		_, _ = io.WriteString(w.out, content)
		return
	}

	parts := strings.Fields(w.pagerCommand())
	if len(parts) == 0 || parts[0] == "cat" {
		_, _ = io.WriteString(w.out, content)
		return
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_, _ = io.WriteString(w.out, content)
	}
}

func (w *Writer) isTerminal() bool {
	if w.pagerDisabled {
		return false
	}
	f, ok := w.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (w *Writer) pagerCommand() string {
	if w.pagerOverride != "" {
		return w.pagerOverride
	}
	if w.configGetter != nil {
		if pager, ok := w.configGetter("pager"); ok && pager != "" {
			return pager
		}
	}
	if w.envGetter != nil {
		if pager := w.envGetter("PAGER"); pager != "" {
			return pager
		}
	}
	return defaultPager
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
