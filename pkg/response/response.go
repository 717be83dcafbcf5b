// Package response carries errors the console decides on its own, tagged
// with the HTTP status to answer with. Failures that come from the AgentDock
// backend travel as agentdock.UpstreamError instead and keep the backend's
// status; this type is for the console's own verdicts (bad input, unknown
// filters, missing files).
package response

import (
	"errors"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Is matches on status and message so sentinel errors declared with
// NewError compare with errors.Is across package boundaries.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.Err.Error() == other.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}
