package console

import (
	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/log"
	"github.com/footprint-tools/roped/internal/ui/style"
)

// Options configures how a console reads, splits and reports commands.
type Options struct {
	// Prompt is printed before each line is read.
	Prompt string
	// CounterSuffix follows the command number printed before the output
	// of each command of a multi-command line.
	CounterSuffix string
	// ErrorPrefix precedes every reported error.
	ErrorPrefix string
	// Whitespace separates arguments.
	Whitespace input.Class
	// Separators separate commands within one line.
	Separators input.Class
	// AdvanceOnDefault makes substituted defaults count as consumed
	// arguments for error positions.
	AdvanceOnDefault bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Prompt:           "> ",
		CounterSuffix:    " ",
		ErrorPrefix:      "!",
		Whitespace:       input.DefaultWhitespace,
		Separators:       input.DefaultSeparators,
		AdvanceOnDefault: true,
	}
}

type settings struct {
	options Options
	logger  domain.Logger
	styler  domain.Styler
	history domain.HistoryStore
	session string
}

// Option customizes a Console.
type Option func(*settings)

// WithOptions replaces the default options.
func WithOptions(opts Options) Option {
	return func(s *settings) {
		s.options = opts
	}
}

// WithLogger sets the logger for dispatch traces and command outcomes.
func WithLogger(logger domain.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithStyler sets the styler used for command numbers and errors.
func WithStyler(styler domain.Styler) Option {
	return func(s *settings) {
		s.styler = styler
	}
}

// WithHistory records every dispatched command under the session id.
func WithHistory(store domain.HistoryStore, session string) Option {
	return func(s *settings) {
		s.history = store
		s.session = session
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		options: DefaultOptions(),
		logger:  log.NopLogger{},
		styler:  style.NopStyler{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.options.Whitespace == nil {
		s.options.Whitespace = input.DefaultWhitespace
	}
	if s.options.Separators == nil {
		s.options.Separators = input.DefaultSeparators
	}
	return s
}
