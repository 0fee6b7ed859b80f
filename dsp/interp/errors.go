package interp

import "errors"

var (
	// ErrLengthMismatch indicates positions and values of different lengths.
	ErrLengthMismatch = errors.New("interp: positions and values must have the same length")
	// ErrInterpolationConstruction indicates that the requested method cannot
	// be built from the given samples.
	ErrInterpolationConstruction = errors.New("interp: cannot construct interpolant")
	// ErrInvalidGrid indicates a negative target count.
	ErrInvalidGrid = errors.New("interp: invalid target grid")
	// ErrUnknownMethod indicates a method name that cannot be parsed.
	ErrUnknownMethod = errors.New("interp: unknown method")
)
