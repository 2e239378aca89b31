package usage

// ExpectedArg is returned when a required argument is not provided.
func ExpectedArg(index int) *Error {
	return &Error{Kind: ErrExpectedArg, Index: index}
}

// ParseArg is returned when an argument cannot be converted to its field's type.
func ParseArg(arg string, index int) *Error {
	return &Error{Kind: ErrParseArg, Index: index, Arg: arg}
}

// Unexpected is returned when input remains after every field is bound.
func Unexpected(arg string, index int) *Error {
	return &Error{Kind: ErrUnexpected, Index: index, Arg: arg}
}
