package matrix

import (
	"errors"
	"fmt"
)

// ErrBadPermutation is returned when a reorder argument is not a full
// permutation of the axis.
var ErrBadPermutation = errors.New("not a full permutation of the axis")

// DimensionMismatchError indicates rows of unequal length at construction,
// or an internal length divergence detected after an edit. The latter is a
// defect, not a user error.
type DimensionMismatchError struct {
	Expected int
	Actual   int
	Row      int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch at row %d: expected length %d, got %d", e.Row, e.Expected, e.Actual)
}
