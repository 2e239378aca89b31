package usage

// ExpectedScope is returned when a route table needs a token but the input is empty.
func ExpectedScope(index int) *Error {
	return &Error{Kind: ErrExpectedScope, Index: index}
}

// ParseScope is returned when a token matches no route of a table.
func ParseScope(token string, index int, suggestions ...string) *Error {
	return &Error{
		Kind:        ErrParseScope,
		Index:       index,
		Arg:         token,
		Suggestions: suggestions,
	}
}
