package alngo

import (
	"fmt"

	"github.com/hupe1980/alngo/engine"
	"github.com/hupe1980/alngo/position"
)

// Predicate decides whether one position on an axis is kept by a filter.
// A column filter receives the vertical character slice at that column
// (one character per row, top to bottom); a row filter receives the full
// row sequence.
type Predicate func(chars string) bool

// FilterReport carries the outcome of one filter evaluation. The
// partition is deterministic: every position lands in exactly one of
// Matched or Unmatched, both in ascending position order.
type FilterReport struct {
	Matched   []int
	Unmatched []int
	Total     int

	// Alignment is the edited alignment: the receiver for in-place
	// calls, a fresh copy for WithCopy calls, nil for dry runs.
	Alignment *Alignment
}

func (a *Alignment) edit(op string, axis engine.Axis, d position.Descriptor, opts []EditOption) (*Alignment, error) {
	o := newEditOptions(opts)

	a.mu.Lock()
	defer a.mu.Unlock()

	ordinals, err := position.Resolve(d, a.eng.Len(axis))
	if err != nil {
		return nil, translateError(err)
	}

	var eng *engine.Engine
	switch op {
	case "remove":
		eng, err = a.eng.Remove(axis, ordinals, o.copy)
	case "retain":
		eng, err = a.eng.Retain(axis, ordinals, o.copy)
	case "reorder":
		eng, err = a.eng.Reorder(axis, ordinals, o.copy)
	default:
		return nil, fmt.Errorf("unknown edit op %q", op)
	}
	if err != nil {
		return nil, translateError(err)
	}

	out := a
	if o.copy {
		out = a.wrap(eng)
	}

	a.logger.LogEdit(op, axis.String(), len(ordinals), eng.Len(engine.Rows), eng.Len(engine.Columns), o.copy)

	return out, nil
}

// RemoveRows deletes the rows selected by d together with their metadata
// records. Survivors keep their relative order. On any error nothing is
// changed. With WithCopy the receiver stays untouched and the edited copy
// is returned; otherwise the receiver itself is returned.
func (a *Alignment) RemoveRows(d position.Descriptor, opts ...EditOption) (*Alignment, error) {
	return a.edit("remove", engine.Rows, d, opts)
}

// RetainRows deletes every row NOT selected by d. Kept rows preserve
// their original relative order regardless of the order the selection
// was written in; retaining is not a reordering operation. Duplicate
// positions in the selection are ignored.
func (a *Alignment) RetainRows(d position.Descriptor, opts ...EditOption) (*Alignment, error) {
	return a.edit("retain", engine.Rows, d, opts)
}

// ReorderRows rewrites row order by an explicit permutation covering
// every row exactly once. Negative positions count from the end.
func (a *Alignment) ReorderRows(perm []int, opts ...EditOption) (*Alignment, error) {
	return a.edit("reorder", engine.Rows, position.List(perm), opts)
}

// RemoveColumns deletes the columns selected by d together with their
// metadata records. Survivors keep their relative order.
func (a *Alignment) RemoveColumns(d position.Descriptor, opts ...EditOption) (*Alignment, error) {
	return a.edit("remove", engine.Columns, d, opts)
}

// RetainColumns deletes every column NOT selected by d. Kept columns
// preserve their original relative order.
func (a *Alignment) RetainColumns(d position.Descriptor, opts ...EditOption) (*Alignment, error) {
	return a.edit("retain", engine.Columns, d, opts)
}

// ReorderColumns rewrites column order by an explicit permutation
// covering every column exactly once. Negative positions count from the
// end.
func (a *Alignment) ReorderColumns(perm []int, opts ...EditOption) (*Alignment, error) {
	return a.edit("reorder", engine.Columns, position.List(perm), opts)
}

func (a *Alignment) filter(axis engine.Axis, pred Predicate, o editOptions) (*FilterReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := a.eng.Filter(axis, engine.Predicate(pred), engine.FilterOptions{
		Inverse: o.inverse,
		DryRun:  o.dryRun,
		Copy:    o.copy,
	})
	if err != nil {
		return nil, translateError(err)
	}

	report := &FilterReport{Matched: res.Matched, Unmatched: res.Unmatched, Total: res.Total}
	if res.Engine != nil {
		if o.copy {
			report.Alignment = a.wrap(res.Engine)
		} else {
			report.Alignment = a
		}
	}

	a.logger.LogFilter(axis.String(), len(res.Matched), res.Total, o.inverse, o.dryRun)

	return report, nil
}

// FilterRows evaluates pred once per row and retains the matched rows
// (or, with WithInverse, the rejected ones). WithDryRun reports the
// partition without structural change and takes precedence over
// WithCopy. Filtering down to zero rows is permitted.
func (a *Alignment) FilterRows(pred Predicate, opts ...EditOption) (*FilterReport, error) {
	return a.filter(engine.Rows, pred, newEditOptions(opts))
}

// FilterColumns evaluates pred once per column, passing the vertical
// character slice at that position, and retains the matched columns (or,
// with WithInverse, the rejected ones). WithDryRun reports the partition
// without structural change and takes precedence over WithCopy.
// Filtering down to zero columns is permitted.
func (a *Alignment) FilterColumns(pred Predicate, opts ...EditOption) (*FilterReport, error) {
	return a.filter(engine.Columns, pred, newEditOptions(opts))
}
