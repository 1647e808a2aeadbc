// Package errorspkg holds the errors the API reports in place of their cause.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrUnavailable indicates that an external collaborator could not be reached or failed on
	// its side. Nothing was committed and the request can be retried.
	ErrUnavailable = errors.New("collaborator unavailable")
)
