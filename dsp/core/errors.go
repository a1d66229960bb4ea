package core

import "errors"

var (
	// ErrInvalidParameter reports a non-positive or non-finite size argument
	// such as a frame length, frame step or FFT size.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch reports a matrix or window whose dimensions disagree
	// with the declared frame length.
	ErrShapeMismatch = errors.New("shape mismatch")
)
