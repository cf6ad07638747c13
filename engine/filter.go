package engine

import "fmt"

// Predicate decides whether one position on an axis is kept. For a column
// filter it receives the vertical slice of characters at that column (one
// per row, top to bottom); for a row filter, the full row sequence.
type Predicate func(chars string) bool

// FilterOptions configure a Filter call.
type FilterOptions struct {
	// Inverse keeps the positions the predicate rejected instead of the
	// ones it matched.
	Inverse bool
	// DryRun reports the partitions without structural change. It takes
	// precedence over Copy: nothing is altered, so no copy is built.
	DryRun bool
	// Copy leaves the receiver untouched and applies the edit to a clone.
	Copy bool
}

// FilterResult carries the deterministic boolean partition of one filter
// evaluation and, unless the call was a dry run, the edited engine.
type FilterResult struct {
	// Matched holds the positions the predicate returned true for, in
	// ascending order; Unmatched the rest.
	Matched   []int
	Unmatched []int
	// Total is the axis length the partition was computed against.
	Total int
	// Engine is the edited engine (the receiver for in-place calls, a
	// fresh clone for copy calls). Nil on dry runs.
	Engine *Engine
}

// Filter evaluates pred exactly once per position along the axis and
// partitions positions into matched and unmatched. The kept partition
// (matched, or unmatched when opts.Inverse is set) is then retained with
// the usual in-place/copy semantics, unless opts.DryRun suppresses the
// edit. Filtering an axis down to zero positions is permitted; the result
// is a valid degenerate alignment.
func (e *Engine) Filter(axis Axis, pred Predicate, opts FilterOptions) (*FilterResult, error) {
	n := e.Len(axis)
	res := &FilterResult{Total: n}
	for i := 0; i < n; i++ {
		var chars string
		if axis == Rows {
			chars = e.mtx.Row(i)
		} else {
			chars = e.mtx.Column(i)
		}
		if pred(chars) {
			res.Matched = append(res.Matched, i)
		} else {
			res.Unmatched = append(res.Unmatched, i)
		}
	}

	if opts.DryRun {
		return res, nil
	}

	kept := res.Matched
	if opts.Inverse {
		kept = res.Unmatched
	}
	t, err := e.Retain(axis, kept, opts.Copy)
	if err != nil {
		return nil, err
	}
	t.hist.Add("filter", fmt.Sprintf("axis=%s kept=%d/%d inverse=%t copy=%t", axis, len(kept), n, opts.Inverse, opts.Copy))
	res.Engine = t
	return res, nil
}
