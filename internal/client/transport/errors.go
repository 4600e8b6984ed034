package transport

import "errors"

// ErrRefreshFailed matches any error produced by a failed token refresh.
var ErrRefreshFailed = errors.New("token refresh failed")

// RefreshError wraps the cause of a failed refresh. It matches both
// ErrRefreshFailed and the cause.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return ErrRefreshFailed.Error() + ": " + e.Err.Error()
}

func (e *RefreshError) Unwrap() []error {
	return []error{ErrRefreshFailed, e.Err}
}
