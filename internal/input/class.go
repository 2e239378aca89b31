package input

import (
	"strings"
	"unicode/utf8"
)

// Class is a set of characters, such as the characters separating
// arguments or the characters separating commands on one line.
type Class interface {
	Contains(r rune) bool
}

// Char is a class holding a single character.
type Char rune

// Contains implements Class.
func (c Char) Contains(r rune) bool {
	return rune(c) == r
}

// Chars is a class holding every character of the string.
type Chars string

// Contains implements Class.
func (c Chars) Contains(r rune) bool {
	return strings.ContainsRune(string(c), r)
}

// Func is a class defined by a predicate.
type Func func(r rune) bool

// Contains implements Class.
func (f Func) Contains(r rune) bool {
	return f(r)
}

// Union is a class holding every character of any of its members.
type Union []Class

// Contains implements Class.
func (u Union) Contains(r rune) bool {
	for _, c := range u {
		if c.Contains(r) {
			return true
		}
	}
	return false
}

// StartsWith reports whether s begins with a member of the class.
func StartsWith(s string, class Class) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return class.Contains(r)
}

// Default classes used by the console when nothing is configured.
var (
	DefaultWhitespace Class = Chars(" \t")
	DefaultSeparators Class = Chars("\n\r;")
)
