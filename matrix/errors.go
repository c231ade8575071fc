// Package matrix: sentinel error set.
package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when requested matrix dimensions
	// are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds is returned when a row or column index is
	// outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch is returned when two matrices involved in an
	// elementwise or shape-dependent operation have incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
