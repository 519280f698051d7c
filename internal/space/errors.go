package space

import "errors"

// Domain errors for space and element operations.
var (
	// ErrShapeMismatch indicates element data that does not fit the space's shape.
	ErrShapeMismatch = errors.New("space: shape mismatch")

	// ErrSpaceMismatch indicates an element that belongs to a different space.
	ErrSpaceMismatch = errors.New("space: element belongs to a different space")
)
