package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("reason is required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidDecision   = errors.New("invalid decision")
)
