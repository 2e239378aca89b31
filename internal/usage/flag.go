package usage

// ExpectedFlag is returned when a value flag is the last token of the input.
func ExpectedFlag(flag string, index int) *Error {
	return &Error{Kind: ErrExpectedFlag, Index: index, Arg: flag}
}

// InvalidFlag is returned when a flag is not valid for the command.
func InvalidFlag(flag string, index int) *Error {
	return &Error{Kind: ErrInvalidFlag, Index: index, Arg: flag}
}

// DuplicateFlag is returned when a flag appears more than once.
func DuplicateFlag(flag string, index int) *Error {
	return &Error{Kind: ErrDuplicateFlag, Index: index, Arg: flag}
}
