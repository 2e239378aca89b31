// Package prompt reads console lines with an interactive line editor:
// history recall, command suggestions and the usual editing keys.
package prompt

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultHistoryLimit = 500

// Source reads one line per call from the terminal. Ctrl+D on an empty
// line, or Ctrl+C on an empty line, ends input with io.EOF.
type Source struct {
	in          io.Reader
	out         io.Writer
	history     []string
	suggestions []string
	limit       int
}

// Option configures a Source.
type Option func(*Source)

// WithHistory preloads recalled lines, oldest first.
func WithHistory(lines []string) Option {
	return func(s *Source) {
		s.history = append([]string(nil), lines...)
	}
}

// WithSuggestions sets the completions offered for the typed prefix.
func WithSuggestions(suggestions []string) Option {
	return func(s *Source) {
		s.suggestions = suggestions
	}
}

// WithHistoryLimit caps how many lines are kept for recall.
func WithHistoryLimit(limit int) Option {
	return func(s *Source) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithIO replaces the terminal input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Source) {
		s.in = in
		s.out = out
	}
}

// New creates a terminal line source.
func New(opts ...Option) *Source {
	s := &Source{
		in:    os.Stdin,
		out:   os.Stdout,
		limit: defaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.trim()
	return s
}

// ReadLine implements console.LineSource.
func (s *Source) ReadLine(prompt string) (string, error) {
	p := tea.NewProgram(
		newModel(prompt, s.history, s.suggestions),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m := final.(model)
	if m.eof {
		return "", io.EOF
	}

	line := m.Value()
	s.Remember(line)
	return line, nil
}

// Remember adds a line to the recall history. Blank lines and immediate
// repeats are skipped.
func (s *Source) Remember(line string) {
	if line == "" {
		return
	}
	if n := len(s.history); n > 0 && s.history[n-1] == line {
		return
	}
	s.history = append(s.history, line)
	s.trim()
}

// History returns the recall history, oldest first.
func (s *Source) History() []string {
	return s.history
}

func (s *Source) trim() {
	if over := len(s.history) - s.limit; over > 0 {
		s.history = s.history[over:]
	}
}
