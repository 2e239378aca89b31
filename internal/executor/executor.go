// Package executor runs an application action over a bound record.
package executor

import "github.com/footprint-tools/roped/internal/usage"

// Action is an application command: it receives exclusive access to the
// shared state and the record bound from the command's arguments.
type Action[S, R any] func(state *S, rec R) error

// Execute runs the action. A failure is reported as a user action error so
// callers can tell it apart from malformed input.
func Execute[S, R any](action Action[S, R], rec R, state *S) error {
	if err := action(state, rec); err != nil {
		return usage.UserAction(err)
	}
	return nil
}
