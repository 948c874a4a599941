package apperrors

import "errors"

var (
	// ErrInvalidInput marks a request rejected by validation before any
	// store access.
	ErrInvalidInput      = errors.New("invalid input")
	ErrMissingChosenDate = errors.New("chosen date parameter is required")
	ErrInvalidMonth      = errors.New("month parameter is required and must be valid")
)
