package rawvec

import (
	"errors"
	"fmt"
)

// Contract violations. Vec never returns these; it panics with an error
// wrapping one of them, so callers that recover can match with errors.Is.
var (
	// ErrZeroSized is raised when the element type has size 0.
	ErrZeroSized = errors.New("rawvec: zero-sized element type")
	// ErrCapacityOverflow is raised when the capacity cannot be doubled
	// or the block size in bytes does not fit in a uintptr.
	ErrCapacityOverflow = errors.New("rawvec: capacity overflow")
	// ErrOffsetOverflow is raised when a slot offset would leave the address space.
	ErrOffsetOverflow = errors.New("rawvec: slot offset overflow")
	// ErrAllocFailed is raised when the backend returns no memory.
	ErrAllocFailed = errors.New("rawvec: allocation failed")
	// ErrLayout is raised when no valid block layout exists for the element type.
	ErrLayout = errors.New("rawvec: invalid layout")
)

// fatal aborts the current operation.
func fatal(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
