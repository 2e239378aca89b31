// Package cli is the roped demo console: named tallies, notes and
// configuration commands dispatched through the route table in tree.go.
package cli

import (
	"maps"
	"slices"

	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/input"
)

// State is shared by every command of one console.
type State struct {
	Counters map[string]int
	Notes    []string

	Config  domain.ConfigProvider
	History domain.HistoryStore
	Out     domain.OutputWriter
	Session string
	// Whitespace is the argument separator the console dispatches with.
	Whitespace input.Class
}

// NewState creates an empty tally backed by the application's services.
func NewState(app *domain.Application, session string) *State {
	return &State{
		Counters:   make(map[string]int),
		Config:     app.Config,
		History:    app.History,
		Out:        app.Output,
		Session:    session,
		Whitespace: input.DefaultWhitespace,
	}
}

func (s *State) counterNames() []string {
	return slices.Sorted(maps.Keys(s.Counters))
}

func (s *State) whitespace() input.Class {
	if s.Whitespace == nil {
		return input.DefaultWhitespace
	}
	return s.Whitespace
}
