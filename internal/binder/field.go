package binder

import "fmt"

type fieldKind int

const (
	kindPositional fieldKind = iota
	kindDefaulted
	kindTrigger
	kindValue
	kindTrail
)

func (k fieldKind) group() string {
	switch k {
	case kindDefaulted:
		return "default"
	case kindTrigger, kindValue:
		return "flag"
	case kindTrail:
		return "trail"
	default:
		return "positional"
	}
}

// Field describes how one field of the record R is filled from input.
// Fields are built with Positional, Defaulted, Trigger, Value and Trail.
type Field[R any] struct {
	kind fieldKind
	name string
	// def renders the default value for usage lines.
	def string

	set        func(rec *R, text string) error
	setDefault func(rec *R)
	// setTrue marks a trigger as present.
	setTrue func(rec *R)
}

// Name returns the field name.
func (f Field[R]) Name() string {
	return f.name
}

func assign[R, T any](p Parser[T], target func(*R) *T) func(*R, string) error {
	return func(rec *R, text string) error {
		v, err := p.Parse(text)
		if err != nil {
			return err
		}
		*target(rec) = v
		return nil
	}
}

// Positional is a required argument.
func Positional[R, T any](name string, p Parser[T], target func(*R) *T) Field[R] {
	return Field[R]{kind: kindPositional, name: name, set: assign(p, target)}
}

// Defaulted is an argument that takes def when the input runs out.
func Defaulted[R, T any](name string, p Parser[T], def T, target func(*R) *T) Field[R] {
	return Field[R]{
		kind: kindDefaulted,
		name: name,
		def:  fmt.Sprint(def),
		set:  assign(p, target),
		setDefault: func(rec *R) {
			*target(rec) = def
		},
	}
}

// Trigger is a flag whose presence sets the target to true.
func Trigger[R any](name string, target func(*R) *bool) Field[R] {
	return Field[R]{
		kind: kindTrigger,
		name: name,
		setTrue: func(rec *R) {
			*target(rec) = true
		},
	}
}

// Value is a flag followed by one value token.
func Value[R, T any](name string, p Parser[T], target func(*R) *Optional[T]) Field[R] {
	return Field[R]{
		kind: kindValue,
		name: name,
		set: func(rec *R, text string) error {
			v, err := p.Parse(text)
			if err != nil {
				return err
			}
			*target(rec) = Optional[T]{Value: v, Set: true}
			return nil
		},
	}
}

// Trail takes whatever input remains, untokenized.
func Trail[R, T any](name string, p Parser[T], target func(*R) *T) Field[R] {
	return Field[R]{kind: kindTrail, name: name, set: assign(p, target)}
}
