package hat

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Get, Set, and Pop when the index (or, for
// Pop, the length) precondition fails. The container is left unchanged.
var ErrOutOfBounds = errors.New("hat: index out of bounds")

// ErrOutOfMemory is returned by Append and any other operation that must
// allocate a new directory or sub-block, when the allocator fails. The
// container is left in a state satisfying its invariants: every allocation
// needed for an operation is attempted before any rotor state is mutated.
var ErrOutOfMemory = errors.New("hat: allocation failed")

func outOfBounds(op string) error {
	return fmt.Errorf("hat: %s: %w", op, ErrOutOfBounds)
}

func outOfMemory(op string, cause error) error {
	return fmt.Errorf("hat: %s: %w: %v", op, ErrOutOfMemory, cause)
}
