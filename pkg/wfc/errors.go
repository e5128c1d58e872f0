package wfc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed request: an example grid smaller
	// than the window, an output smaller than the window, or N < 1.
	ErrInvalidInput = errors.New("wfc: invalid input")

	// ErrContradiction indicates propagation drove some wave cell's
	// possibility count to zero. The solve is aborted; no output is produced.
	ErrContradiction = errors.New("wfc: contradiction")

	// ErrOutOfMemory indicates the requested dimensions would require an
	// allocation large enough that it is rejected up front rather than left
	// to panic partway through the solve.
	ErrOutOfMemory = errors.New("wfc: out of memory")
)

// ContradictionError wraps ErrContradiction with the coordinates of the wave
// cell that ran out of possibilities, for diagnostics.
type ContradictionError struct {
	X, Y int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("wfc: contradiction at wave cell (%d,%d)", e.X, e.Y)
}

func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}
