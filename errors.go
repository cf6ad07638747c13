package alngo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/alngo/matrix"
	"github.com/hupe1980/alngo/position"
)

var (
	// ErrOutOfRange is returned when a resolved position falls outside
	// the current axis bounds. It is raised before any mutation begins.
	ErrOutOfRange = errors.New("position out of range")

	// ErrBadPermutation is returned when a reorder argument is not a
	// full permutation of its axis.
	ErrBadPermutation = errors.New("invalid permutation")

	// ErrRowCountMismatch is returned when joining alignments whose row
	// counts differ.
	ErrRowCountMismatch = errors.New("alignments have different row counts")
)

// DimensionMismatchError indicates construction input rows of unequal
// length.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type DimensionMismatchError struct {
	Expected int
	Actual   int
	Row      int
	cause    error
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: row %d has length %d, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *DimensionMismatchError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oor *position.OutOfRangeError
	if errors.As(err, &oor) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	var dim *matrix.DimensionMismatchError
	if errors.As(err, &dim) {
		return &DimensionMismatchError{Expected: dim.Expected, Actual: dim.Actual, Row: dim.Row, cause: err}
	}

	if errors.Is(err, matrix.ErrBadPermutation) {
		return fmt.Errorf("%w: %w", ErrBadPermutation, err)
	}

	return err
}
