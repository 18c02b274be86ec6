package domain

import "errors"

var (
	// ErrUnavailable means every fetch attempt against the service failed.
	ErrUnavailable = errors.New("service unavailable")
	// ErrValidation means a local pre-check rejected the input before any
	// network call was made.
	ErrValidation        = errors.New("validation failed")
	ErrNotPlayable       = errors.New("entry not playable")
	ErrEntryNotFound     = errors.New("catalog entry not found")
	ErrSessionAllocation = errors.New("play session allocation failed")
	ErrLaunchFailed      = errors.New("process launch failed")
	// ErrCacheMiss covers both a never-written and an unreadable cache; it
	// never reaches the user.
	ErrCacheMiss = errors.New("catalog cache miss")
	// ErrNoUser means the operation needs a signed-in user.
	ErrNoUser = errors.New("no user signed in")
)
