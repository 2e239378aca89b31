package usage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrExpectedScope
	ErrParseScope
	ErrExpectedArg
	ErrParseArg
	ErrExpectedFlag
	ErrInvalidFlag
	ErrDuplicateFlag
	ErrUnexpected
	ErrUserAction
)

func (k ErrorKind) String() string {
	switch k {
	case ErrExpectedScope:
		return "expected-scope"
	case ErrParseScope:
		return "parse-scope"
	case ErrExpectedArg:
		return "expected-arg"
	case ErrParseArg:
		return "parse-arg"
	case ErrExpectedFlag:
		return "expected-flag"
	case ErrInvalidFlag:
		return "invalid-flag"
	case ErrDuplicateFlag:
		return "duplicate-flag"
	case ErrUnexpected:
		return "unexpected"
	case ErrUserAction:
		return "user-action"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: the command ran and failed
//	  - Unknown errors
//	  - User action errors
//
//	Exit 2: malformed input
//	  - Missing or invalid scope
//	  - Missing or invalid argument
//	  - Missing, invalid or repeated flag
//	  - Unexpected argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:       1,
	ErrExpectedScope: 2,
	ErrParseScope:    2,
	ErrExpectedArg:   2,
	ErrParseArg:      2,
	ErrExpectedFlag:  2,
	ErrInvalidFlag:   2,
	ErrDuplicateFlag: 2,
	ErrUnexpected:    2,
	ErrUserAction:    1,
}

// Error is a failure to dispatch or run one command. Every error carries the
// 1-based dispatch index of the slot that failed.
type Error struct {
	Kind  ErrorKind
	Index int
	// Arg is the offending input text, when there is one.
	Arg string
	// Suggestions lists close matches for an invalid scope.
	Suggestions []string
	// Err is the failure reported by a user action.
	Err      error
	ExitCode int // overrides the code derived from Kind when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrExpectedScope:
		return fmt.Sprintf("missing scope (%d)", e.Index)
	case ErrParseScope:
		msg := fmt.Sprintf("invalid scope '%s' (%d)", e.Arg, e.Index)
		if len(e.Suggestions) > 0 {
			msg += ". Did you mean " + quoteList(e.Suggestions) + "?"
		}
		return msg
	case ErrExpectedArg:
		return fmt.Sprintf("missing argument (%d)", e.Index)
	case ErrParseArg:
		return fmt.Sprintf("unable to cast argument '%s' (%d)", e.Arg, e.Index)
	case ErrExpectedFlag:
		return fmt.Sprintf("missing value for flag '%s' (%d)", e.Arg, e.Index)
	case ErrInvalidFlag:
		return fmt.Sprintf("invalid flag '%s' (%d)", e.Arg, e.Index)
	case ErrDuplicateFlag:
		return fmt.Sprintf("flag '%s' given more than once (%d)", e.Arg, e.Index)
	case ErrUnexpected:
		return fmt.Sprintf("unexpected argument '%s' (%d)", e.Arg, e.Index)
	case ErrUserAction:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "command failed"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown error"
	}
}

// Unwrap returns the user action's error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInput reports whether the error describes malformed input rather than a
// command that ran and failed.
func (e *Error) IsInput() bool {
	return e.Kind != ErrUserAction && e.Kind != ErrUnknown
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// KindOf returns the kind of the first *Error in err's chain, or ErrUnknown.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// ExitCode returns the exit code for any error: 0 for nil, the usage code
// for *Error, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
