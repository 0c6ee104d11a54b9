package core

import "errors"

// Common errors.
var (
	ErrEmptyPath      = errors.New("target path cannot be empty")
	ErrNotRegularFile = errors.New("target is not a regular file")
)
