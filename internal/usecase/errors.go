package usecase

import "errors"

// Shared sentinels returned across usecases; handlers map them to HTTP
// statuses. Conflict-class failures carry operation-specific sentinels
// (ErrAlreadyClockedIn, ErrLeaveAlreadyDecided, ...) instead of a shared one.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)
