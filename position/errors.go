package position

import (
	"errors"
	"fmt"
)

// ErrZeroStep is returned when a Slice descriptor carries a step of zero.
var ErrZeroStep = errors.New("slice step cannot be zero")

// OutOfRangeError indicates a position that, after negative-index
// normalization, falls outside [-length, length-1].
//
// It is always raised before any structure is mutated.
type OutOfRangeError struct {
	// Index is the position as supplied by the caller.
	Index int
	// Length is the axis length the position was validated against.
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range for axis of length %d", e.Index, e.Length)
}
