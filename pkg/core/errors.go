package core

import "errors"

// Common errors.
var (
	ErrEmptyName   = errors.New("document name cannot be empty")
	ErrNilDocument = errors.New("document cannot be nil")
)
