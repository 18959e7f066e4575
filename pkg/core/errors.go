package core

import "errors"

// Common errors.
var (
	ErrNotWatchable = errors.New("storage does not support watching")
	ErrNotBound     = errors.New("session is not bound to a note")
)
