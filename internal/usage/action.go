package usage

// UserAction wraps the failure reported by an application action. An error
// that already is a user action error is returned unchanged.
func UserAction(err error) *Error {
	if ue, ok := err.(*Error); ok && ue.Kind == ErrUserAction {
		return ue
	}
	return &Error{Kind: ErrUserAction, Err: err}
}
