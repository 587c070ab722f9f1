// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")

	// Submission taxonomy. Every failure is local to one user action;
	// none of these is fatal to the process.
	ErrValidation = errors.New("validation failed")
	ErrCooldown   = errors.New("cooldown active")
	ErrStorage    = errors.New("storage failure")
	ErrFetch      = errors.New("fetch failure")
)
