package binder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Parser converts the text of one argument into a field value.
type Parser[T any] interface {
	Parse(text string) (T, error)
}

// ParserFunc adapts a conversion function into a Parser.
type ParserFunc[T any] func(text string) (T, error)

// Parse implements Parser.
func (f ParserFunc[T]) Parse(text string) (T, error) {
	return f(text)
}

var (
	String Parser[string] = ParserFunc[string](func(s string) (string, error) { return s, nil })
	Int    Parser[int]    = ParserFunc[int](strconv.Atoi)
	Int64  Parser[int64]  = ParserFunc[int64](func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	Uint Parser[uint] = ParserFunc[uint](func(s string) (uint, error) {
		n, err := strconv.ParseUint(s, 10, 0)
		return uint(n), err
	})
	Float Parser[float64] = ParserFunc[float64](func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	Bool     Parser[bool]          = ParserFunc[bool](strconv.ParseBool)
	Duration Parser[time.Duration] = ParserFunc[time.Duration](time.ParseDuration)
	UUID     Parser[uuid.UUID]     = ParserFunc[uuid.UUID](uuid.Parse)

	// Text takes trailing input verbatim. It never fails, the empty string
	// included.
	Text = String
)

// OneOf accepts exactly one of the given choices.
func OneOf(choices ...string) Parser[string] {
	return ParserFunc[string](func(s string) (string, error) {
		if slices.Contains(choices, s) {
			return s, nil
		}
		return "", fmt.Errorf("expected one of %s", strings.Join(choices, ", "))
	})
}

// Optional holds the value of a value flag, and whether the flag was given.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Or returns the value if set, def otherwise.
func (o Optional[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}
	return def
}
