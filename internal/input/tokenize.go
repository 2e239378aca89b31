package input

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Trim removes characters of the class from both ends of the cursor. The
// result may be empty.
func Trim(c Cursor, class Class) Cursor {
	text := c.Text()
	first := strings.IndexFunc(text, func(r rune) bool { return !class.Contains(r) })
	if first < 0 {
		return c.exhausted()
	}

	last := strings.LastIndexFunc(text, func(r rune) bool { return !class.Contains(r) })
	_, size := utf8.DecodeRuneInString(text[last:])

	return c.slice(first, last+size)
}

// NextToken splits the first token off the cursor. The cursor is trimmed of
// whitespace first; if nothing remains, ok is false. Otherwise the token ends
// at the first whitespace character and rest is what follows it, trimmed.
func NextToken(c Cursor, ws Class) (token Cursor, rest Cursor, ok bool) {
	c = Trim(c, ws)
	if c.IsEmpty() {
		return Cursor{}, c, false
	}

	text := c.Text()
	i := strings.IndexFunc(text, ws.Contains)
	if i < 0 {
		return c, c.exhausted(), true
	}

	return c.slice(0, i), Trim(c.slice(i, len(text)), ws), true
}

// Tokens yields every token of the cursor in order. Every range over the
// sequence starts again from c.
func Tokens(c Cursor, ws Class) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		cur := c
		for {
			token, rest, ok := NextToken(cur, ws)
			if !ok || !yield(token) {
				return
			}
			cur = rest
		}
	}
}

// Fields returns the text of every token of the line.
func Fields(line string, ws Class) []string {
	var out []string
	for token := range Tokens(New(line), ws) {
		out = append(out, token.Text())
	}
	return out
}

// SplitCommands yields one cursor per command of the line. A run of
// separators counts as a single separator, so no empty commands are
// produced. Each call iterates the line afresh.
func SplitCommands(line string, sep Class) iter.Seq[Cursor] {
	return Tokens(New(line), sep)
}
