package dispatchers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/usage"
)

const defaultSuggestionsCount = 3

// ErrInvalidTable is wrapped by every route table declaration error.
var ErrInvalidTable = errors.New("invalid route table")

type routeKind int

const (
	routePrefix routeKind = iota
	routeName
	routeFallback
)

// Route is one entry of a route table.
type Route[S any] struct {
	kind    routeKind
	literal string
	summary string
	handler Handler[S]
}

// Prefix routes input starting with the literal, glued or not, to h. The
// literal is matched on raw text, before any tokenization.
func Prefix[S any](literal string, h Handler[S]) Route[S] {
	return Route[S]{kind: routePrefix, literal: literal, handler: h}
}

// Name routes input whose first token equals the literal to h.
func Name[S any](literal string, h Handler[S]) Route[S] {
	return Route[S]{kind: routeName, literal: literal, handler: h}
}

// Fallback routes any input no other entry matched, untokenized, to h.
func Fallback[S any](h Handler[S]) Route[S] {
	return Route[S]{kind: routeFallback, handler: h}
}

// Describe attaches a one-line summary shown by help.
func (r Route[S]) Describe(summary string) Route[S] {
	r.summary = summary
	return r
}

// Table is an immutable, ordered set of routes. Prefixes are tried in
// declaration order and the first match wins; names are then matched
// against the next token; the fallback takes whatever is left.
type Table[S any] struct {
	routes   []Route[S]
	prefixes []Route[S]
	names    map[string]Route[S]
	fallback *Route[S]
}

// NewTable validates the routes and builds a table. Literals must be
// non-empty and unique, names may not contain spaces, at most one fallback
// may be declared, and a prefix may not be shadowed by an earlier prefix
// (it could never match).
func NewTable[S any](routes ...Route[S]) (*Table[S], error) {
	t := &Table[S]{names: make(map[string]Route[S])}
	seen := make(map[string]bool)

	for _, r := range routes {
		if r.handler == nil {
			return nil, fmt.Errorf("%w: route %q has no handler", ErrInvalidTable, r.literal)
		}

		switch r.kind {
		case routeFallback:
			if t.fallback != nil {
				return nil, fmt.Errorf("%w: more than one fallback", ErrInvalidTable)
			}
			fallback := r
			t.fallback = &fallback

		case routePrefix, routeName:
			if r.literal == "" {
				return nil, fmt.Errorf("%w: empty literal", ErrInvalidTable)
			}
			if seen[r.literal] {
				return nil, fmt.Errorf("%w: duplicate literal %q", ErrInvalidTable, r.literal)
			}
			seen[r.literal] = true

			if r.kind == routeName {
				if strings.IndexFunc(r.literal, unicode.IsSpace) >= 0 {
					return nil, fmt.Errorf("%w: name %q contains whitespace", ErrInvalidTable, r.literal)
				}
				t.names[r.literal] = r
				break
			}

			for _, earlier := range t.prefixes {
				if strings.HasPrefix(r.literal, earlier.literal) {
					return nil, fmt.Errorf("%w: prefix %q is shadowed by earlier prefix %q",
						ErrInvalidTable, r.literal, earlier.literal)
				}
			}
			t.prefixes = append(t.prefixes, r)
		}

		t.routes = append(t.routes, r)
	}

	return t, nil
}

// MustTable is like NewTable but panics on an invalid declaration. Route
// tables are static, so a bad one is a programming error.
func MustTable[S any](routes ...Route[S]) *Table[S] {
	t, err := NewTable(routes...)
	if err != nil {
		panic(fmt.Sprintf("dispatchers.MustTable: %v", err))
	}
	return t
}

// Run implements Handler.
func (t *Table[S]) Run(state *S, req Request) error {
	logger := req.Logger()
	in := req.Trimmed()

	if in.IsEmpty() {
		if t.fallback != nil {
			logger.Debug("dispatch: no input, using fallback (%d)", req.Index)
			return t.fallback.handler.Run(state, req.With(in, req.Index))
		}
		return usage.ExpectedScope(req.Index)
	}

	for _, p := range t.prefixes {
		rest, ok := in.CutPrefix(p.literal)
		if !ok {
			continue
		}
		logger.Debug("dispatch: prefix '%s' matched at offset %d (%d)", p.literal, in.Offset(), req.Index)
		return p.handler.Run(state, req.With(input.Trim(rest, req.Whitespace()), req.Index))
	}

	token, rest, _ := input.NextToken(in, req.Whitespace())

	if r, ok := t.names[token.Text()]; ok {
		logger.Debug("dispatch: name '%s' matched (%d)", r.literal, req.Index)
		return r.handler.Run(state, req.With(rest, req.Index+1))
	}

	if t.fallback != nil {
		logger.Debug("dispatch: '%s' matched nothing, using fallback (%d)", token.Text(), req.Index)
		return t.fallback.handler.Run(state, req.With(in, req.Index))
	}

	suggestions := FindSimilarNames(token.Text(), t.Names(), defaultSuggestionsCount)
	return usage.ParseScope(token.Text(), req.Index, suggestions...)
}

// Names returns the name literals of the table in declaration order.
func (t *Table[S]) Names() []string {
	var names []string
	for _, r := range t.routes {
		if r.kind == routeName {
			names = append(names, r.literal)
		}
	}
	return names
}

// Prefixes returns the prefix literals of the table in declaration order.
func (t *Table[S]) Prefixes() []string {
	var prefixes []string
	for _, r := range t.prefixes {
		prefixes = append(prefixes, r.literal)
	}
	return prefixes
}

// HasFallback reports whether the table declares a fallback.
func (t *Table[S]) HasFallback() bool {
	return t.fallback != nil
}

// Usage implements Usager.
func (t *Table[S]) Usage() string {
	var alternatives []string
	for _, r := range t.routes {
		switch r.kind {
		case routePrefix:
			alternatives = append(alternatives, r.literal+"…")
		case routeName:
			alternatives = append(alternatives, r.literal)
		}
	}
	if t.fallback != nil {
		alternatives = append(alternatives, "…")
	}
	return "<" + strings.Join(alternatives, "|") + ">"
}
