package optics

import "errors"

// Domain errors for parameter validation at the CLI and config boundary.
var (
	// ErrInvalidParams indicates a NaN, Inf or negative physical parameter.
	ErrInvalidParams = errors.New("optics: invalid parameters")

	// ErrUnknownParam indicates SetParam was called with an unrecognized name.
	ErrUnknownParam = errors.New("optics: unknown parameter")
)
