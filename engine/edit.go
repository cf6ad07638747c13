package engine

import (
	"fmt"

	"github.com/hupe1980/alngo/position"
)

// Remove deletes the rows or columns at the given resolved ordinals from
// the matrix and the corresponding metadata table in one logical
// transaction. Survivors keep their relative order. With copy=true the
// receiver stays untouched and the edited clone is returned; otherwise
// the receiver itself is returned.
func (e *Engine) Remove(axis Axis, ordinals []int, copy bool) (*Engine, error) {
	if err := e.validate(axis, ordinals); err != nil {
		return nil, err
	}
	drop := position.SetOf(ordinals...)

	t := e.target(copy)
	if axis == Rows {
		t.mtx.RemoveRows(drop)
		t.rows.Remove(drop)
	} else {
		t.mtx.RemoveColumns(drop)
		t.cols.Remove(drop)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	t.hist.Add("remove", fmt.Sprintf("axis=%s n=%d copy=%t", axis, drop.Cardinality(), copy))
	return t, nil
}

// Retain deletes every row or column NOT at the given resolved ordinals.
// Kept positions preserve their original relative order regardless of the
// order ordinals were supplied in; retain is not a reordering operation.
func (e *Engine) Retain(axis Axis, ordinals []int, copy bool) (*Engine, error) {
	if err := e.validate(axis, ordinals); err != nil {
		return nil, err
	}
	keep := position.SetOf(ordinals...)

	t := e.target(copy)
	if axis == Rows {
		t.mtx.RetainRows(keep)
		t.rows.Retain(keep)
	} else {
		t.mtx.RetainColumns(keep)
		t.cols.Retain(keep)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	t.hist.Add("retain", fmt.Sprintf("axis=%s n=%d copy=%t", axis, keep.Cardinality(), copy))
	return t, nil
}

// Reorder rewrites row or column order by an explicit full permutation.
// The matrix validates the permutation before committing, so a bad
// permutation mutates nothing.
func (e *Engine) Reorder(axis Axis, perm []int, copy bool) (*Engine, error) {
	t := e.target(copy)
	if axis == Rows {
		if err := t.mtx.ReorderRows(perm); err != nil {
			return nil, err
		}
		t.rows.Reorder(perm)
	} else {
		if err := t.mtx.ReorderColumns(perm); err != nil {
			return nil, err
		}
		t.cols.Reorder(perm)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	t.hist.Add("reorder", fmt.Sprintf("axis=%s copy=%t", axis, copy))
	return t, nil
}

// AppendColumns concatenates other's columns and column metadata after
// the receiver's. Both engines must have the same number of rows.
func (e *Engine) AppendColumns(other *Engine, copy bool) (*Engine, error) {
	t := e.target(copy)
	if err := t.mtx.AppendColumns(other.mtx); err != nil {
		return nil, err
	}
	t.cols.Append(other.cols)
	if err := t.check(); err != nil {
		return nil, err
	}
	t.hist.Add("append_columns", fmt.Sprintf("n=%d copy=%t", other.mtx.NCols(), copy))
	return t, nil
}
