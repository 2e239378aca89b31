package dispatchers

import (
	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/log"
)

// Env holds the settings shared by every handler of one console.
type Env struct {
	// Whitespace separates arguments.
	Whitespace input.Class
	// AdvanceOnDefault makes a substituted default value count as a
	// consumed argument, keeping later positions stable in error messages.
	AdvanceOnDefault bool
	Logger           domain.Logger
}

// DefaultEnv returns the settings used when none are configured.
func DefaultEnv() *Env {
	return &Env{
		Whitespace:       input.DefaultWhitespace,
		AdvanceOnDefault: true,
		Logger:           log.NopLogger{},
	}
}

// Request is the residual input handed to a handler, along with the
// dispatch index of the next argument slot.
type Request struct {
	Input input.Cursor
	Index int
	Env   *Env
}

// NewRequest starts a dispatch of one command at index 1.
func NewRequest(in input.Cursor, env *Env) Request {
	return Request{Input: in, Index: 1, Env: env}
}

// With returns a copy of the request over different input and index.
func (r Request) With(in input.Cursor, index int) Request {
	r.Input = in
	r.Index = index
	return r
}

// Whitespace returns the class separating arguments.
func (r Request) Whitespace() input.Class {
	if r.Env == nil || r.Env.Whitespace == nil {
		return input.DefaultWhitespace
	}
	return r.Env.Whitespace
}

// AdvanceOnDefault reports whether substituted defaults advance the index.
func (r Request) AdvanceOnDefault() bool {
	if r.Env == nil {
		return true
	}
	return r.Env.AdvanceOnDefault
}

// Logger returns the logger for dispatch traces.
func (r Request) Logger() domain.Logger {
	if r.Env == nil || r.Env.Logger == nil {
		return log.NopLogger{}
	}
	return r.Env.Logger
}

// Trimmed returns the request input trimmed of whitespace.
func (r Request) Trimmed() input.Cursor {
	return input.Trim(r.Input, r.Whitespace())
}

// Handler consumes a request against shared state: either a route table
// selecting a nested handler, or a leaf binding fields and running an
// action.
type Handler[S any] interface {
	Run(state *S, req Request) error
}

// HandlerFunc adapts a function into a Handler.
type HandlerFunc[S any] func(state *S, req Request) error

// Run implements Handler.
func (f HandlerFunc[S]) Run(state *S, req Request) error {
	return f(state, req)
}

// Usager is implemented by handlers that can print their argument syntax.
type Usager interface {
	Usage() string
}
