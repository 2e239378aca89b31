package input

import "strings"

// Cursor is a view into one line of input. It never copies the line:
// narrowing a cursor only moves its start and end offsets.
//
// The zero Cursor is empty and means "no text remains".
type Cursor struct {
	line  string
	start int
	end   int
}

// New returns a cursor spanning the whole line.
func New(line string) Cursor {
	return Cursor{line: line, end: len(line)}
}

// Text returns the text the cursor currently spans.
func (c Cursor) Text() string {
	if c.IsEmpty() {
		return ""
	}
	return c.line[c.start:c.end]
}

// String implements fmt.Stringer.
func (c Cursor) String() string {
	return c.Text()
}

// IsEmpty reports whether no text remains.
func (c Cursor) IsEmpty() bool {
	return c.start >= c.end
}

// Len returns the length in bytes of the spanned text.
func (c Cursor) Len() int {
	if c.IsEmpty() {
		return 0
	}
	return c.end - c.start
}

// Offset returns the byte offset of the cursor within the original line.
func (c Cursor) Offset() int {
	return c.start
}

// Line returns the full line the cursor was cut from.
func (c Cursor) Line() string {
	return c.line
}

// HasPrefix reports whether the spanned text starts with the literal.
func (c Cursor) HasPrefix(literal string) bool {
	return strings.HasPrefix(c.Text(), literal)
}

// CutPrefix strips the literal from the start of the cursor. The returned
// cursor is not trimmed.
func (c Cursor) CutPrefix(literal string) (Cursor, bool) {
	if !c.HasPrefix(literal) {
		return c, false
	}
	return c.slice(len(literal), c.Len()), true
}

// exhausted returns an empty cursor positioned at the end of c.
func (c Cursor) exhausted() Cursor {
	return Cursor{line: c.line, start: c.end, end: c.end}
}

// slice narrows the cursor to [i, j) relative to its current start.
func (c Cursor) slice(i, j int) Cursor {
	return Cursor{line: c.line, start: c.start + i, end: c.start + j}
}
