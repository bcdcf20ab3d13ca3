package units

import "errors"

// Sentinel errors for conversion operations.
var (
	ErrNotANumber      = errors.New("not a number")
	ErrInvalidBaseSize = errors.New("invalid base size")
	ErrNoValidNumbers  = errors.New("no valid numbers found")
)
