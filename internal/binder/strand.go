// Package binder fills application records from the arguments of one
// command and runs the command's action over them.
package binder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/footprint-tools/roped/internal/dispatchers"
	"github.com/footprint-tools/roped/internal/executor"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/usage"
)

// ErrInvalidStrand is wrapped by every field declaration error.
var ErrInvalidStrand = errors.New("invalid strand")

// Strand is a leaf handler: it binds the record R from the remaining input,
// then runs its action against the shared state S.
//
// Positional fields come first, in order. They may be followed by exactly
// one group: defaulted fields, flags, or a single trail.
type Strand[S, R any] struct {
	fields     []Field[R]
	positional []Field[R]
	flags      []Field[R]
	trail      *Field[R]
	markers    map[string]int
	action     executor.Action[S, R]
}

var _ dispatchers.Handler[struct{}] = (*Strand[struct{}, struct{}])(nil)

// NewStrand validates the fields and builds a strand running action.
func NewStrand[S, R any](action func(state *S, rec R) error, fields ...Field[R]) (*Strand[S, R], error) {
	if action == nil {
		return nil, fmt.Errorf("%w: nil action", ErrInvalidStrand)
	}

	s := &Strand[S, R]{
		fields:  fields,
		markers: make(map[string]int),
		action:  action,
	}

	names := make(map[string]bool)
	group := ""

	for i, f := range fields {
		if f.set == nil && f.setTrue == nil {
			return nil, fmt.Errorf("%w: field %d was not built with a field constructor", ErrInvalidStrand, i+1)
		}
		if f.name == "" || strings.IndexFunc(f.name, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: invalid field name %q", ErrInvalidStrand, f.name)
		}
		if names[f.name] {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidStrand, f.name)
		}
		names[f.name] = true

		if f.kind == kindPositional {
			if group != "" {
				return nil, fmt.Errorf("%w: positional field %q follows %s fields", ErrInvalidStrand, f.name, group)
			}
			s.positional = append(s.positional, f)
			continue
		}

		if group != "" && group != f.kind.group() {
			return nil, fmt.Errorf("%w: %s field %q mixed with %s fields", ErrInvalidStrand, f.kind.group(), f.name, group)
		}
		group = f.kind.group()

		switch f.kind {
		case kindDefaulted:
			s.positional = append(s.positional, f)
		case kindTrigger, kindValue:
			if strings.HasPrefix(f.name, "-") {
				return nil, fmt.Errorf("%w: flag name %q starts with a dash", ErrInvalidStrand, f.name)
			}
			s.flags = append(s.flags, f)
		case kindTrail:
			if i != len(fields)-1 {
				return nil, fmt.Errorf("%w: trail %q is not the last field", ErrInvalidStrand, f.name)
			}
			trail := f
			s.trail = &trail
		}
	}

	s.indexMarkers()
	return s, nil
}

// MustStrand is like NewStrand but panics on an invalid declaration.
func MustStrand[S, R any](action func(state *S, rec R) error, fields ...Field[R]) *Strand[S, R] {
	s, err := NewStrand(action, fields...)
	if err != nil {
		panic(fmt.Sprintf("binder.MustStrand: %v", err))
	}
	return s
}

// indexMarkers maps "--name" to every flag, and "-n" to flags whose first
// character no other flag starts with.
func (s *Strand[S, R]) indexMarkers() {
	firsts := make(map[rune]int)
	for _, f := range s.flags {
		r, _ := utf8.DecodeRuneInString(f.name)
		firsts[r]++
	}

	for i, f := range s.flags {
		s.markers["--"+f.name] = i
		r, _ := utf8.DecodeRuneInString(f.name)
		if firsts[r] == 1 {
			s.markers["-"+string(r)] = i
		}
	}
}

// isMarker reports whether the token is shaped like a flag. A dash followed
// by a digit is a negative number, not a flag.
func isMarker(token string) bool {
	if strings.HasPrefix(token, "--") {
		return len(token) > 2
	}
	rest, ok := strings.CutPrefix(token, "-")
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsDigit(r) && r != '.'
}

// Bind fills a record from the request input and returns it with the
// dispatch index following the last consumed argument.
func (s *Strand[S, R]) Bind(req dispatchers.Request) (R, int, error) {
	var rec R

	ws := req.Whitespace()
	index := req.Index
	rest := req.Trimmed()

	for _, f := range s.positional {
		token, next, ok := input.NextToken(rest, ws)
		if !ok {
			if f.kind != kindDefaulted {
				return rec, index, usage.ExpectedArg(index)
			}
			f.setDefault(&rec)
			if req.AdvanceOnDefault() {
				index++
			}
			continue
		}

		if err := f.set(&rec, token.Text()); err != nil {
			req.Logger().Debug("bind: field '%s' rejected '%s': %v", f.name, token.Text(), err)
			return rec, index, usage.ParseArg(token.Text(), index)
		}
		index++
		rest = next
	}

	if len(s.flags) > 0 {
		var err error
		if rest, index, err = s.bindFlags(&rec, rest, index, ws); err != nil {
			return rec, index, err
		}
	}

	if s.trail != nil {
		text := rest.Text()
		if err := s.trail.set(&rec, text); err != nil {
			return rec, index, usage.ParseArg(text, index)
		}
		return rec, index, nil
	}

	if token, _, ok := input.NextToken(rest, ws); ok {
		return rec, index, usage.Unexpected(token.Text(), index)
	}

	return rec, index, nil
}

func (s *Strand[S, R]) bindFlags(rec *R, rest input.Cursor, index int, ws input.Class) (input.Cursor, int, error) {
	seen := make([]bool, len(s.flags))

	for {
		token, next, ok := input.NextToken(rest, ws)
		if !ok {
			return rest, index, nil
		}

		marker := token.Text()
		if !isMarker(marker) {
			return rest, index, usage.Unexpected(marker, index)
		}

		i, known := s.markers[marker]
		if !known {
			return rest, index, usage.InvalidFlag(marker, index)
		}
		if seen[i] {
			return rest, index, usage.DuplicateFlag(marker, index)
		}
		seen[i] = true

		f := s.flags[i]
		index++
		rest = next

		if f.kind == kindTrigger {
			f.setTrue(rec)
			continue
		}

		value, next, ok := input.NextToken(rest, ws)
		if !ok {
			return rest, index, usage.ExpectedFlag(marker, index)
		}
		if err := f.set(rec, value.Text()); err != nil {
			return rest, index, usage.ParseArg(value.Text(), index)
		}
		index++
		rest = next
	}
}

// Run implements dispatchers.Handler.
func (s *Strand[S, R]) Run(state *S, req dispatchers.Request) error {
	rec, index, err := s.Bind(req)
	if err != nil {
		return err
	}
	req.Logger().Debug("bind: %d field(s) bound, index %d -> %d", len(s.fields), req.Index, index)
	return executor.Execute(s.action, rec, state)
}

// Usage implements dispatchers.Usager.
func (s *Strand[S, R]) Usage() string {
	parts := make([]string, 0, len(s.fields))

	for _, f := range s.fields {
		switch f.kind {
		case kindPositional:
			parts = append(parts, "<"+f.name+">")
		case kindDefaulted:
			parts = append(parts, "["+f.name+"="+f.def+"]")
		case kindTrigger:
			parts = append(parts, "[--"+f.name+"]")
		case kindValue:
			parts = append(parts, "[--"+f.name+" <"+f.name+">]")
		case kindTrail:
			parts = append(parts, "["+f.name+"...]")
		}
	}

	return strings.Join(parts, " ")
}
