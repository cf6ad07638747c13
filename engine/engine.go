package engine

import (
	"github.com/hupe1980/alngo/matrix"
	"github.com/hupe1980/alngo/metadata"
	"github.com/hupe1980/alngo/position"
)

// Engine is the aggregate of one character matrix, its row and column
// metadata tables and the alignment-level metadata document.
type Engine struct {
	mtx  *matrix.Matrix
	rows *metadata.RowTable
	cols *metadata.ColumnTable
	meta metadata.Document
	hist *History
}

// New assembles an engine and verifies both tables track their axes.
// A nil history disables edit tracking.
func New(m *matrix.Matrix, rows *metadata.RowTable, cols *metadata.ColumnTable, meta metadata.Document, hist *History) (*Engine, error) {
	if rows.Len() != m.NRows() {
		return nil, &DesyncError{Axis: Rows, MatrixLen: m.NRows(), MetadataLen: rows.Len()}
	}
	if cols.Len() != m.NCols() {
		return nil, &DesyncError{Axis: Columns, MatrixLen: m.NCols(), MetadataLen: cols.Len()}
	}
	if meta == nil {
		meta = metadata.Document{}
	}
	return &Engine{mtx: m, rows: rows, cols: cols, meta: meta, hist: hist}, nil
}

// Matrix returns the character matrix. Callers must not mutate it
// directly; edits go through the engine so metadata stays in sync.
func (e *Engine) Matrix() *matrix.Matrix { return e.mtx }

// RowTable returns the per-sample metadata table.
func (e *Engine) RowTable() *metadata.RowTable { return e.rows }

// ColumnTable returns the per-site metadata table.
func (e *Engine) ColumnTable() *metadata.ColumnTable { return e.cols }

// Meta returns the alignment-level metadata document.
func (e *Engine) Meta() metadata.Document { return e.meta }

// History returns the edit history, or nil when tracking is disabled.
func (e *Engine) History() *History { return e.hist }

// Len returns the current length of an axis.
func (e *Engine) Len(axis Axis) int {
	if axis == Rows {
		return e.mtx.NRows()
	}
	return e.mtx.NCols()
}

// Clone returns a deep copy sharing no storage with the receiver.
func (e *Engine) Clone() *Engine {
	return &Engine{
		mtx:  e.mtx.Clone(),
		rows: e.rows.Clone(),
		cols: e.cols.Clone(),
		meta: e.meta.Clone(),
		hist: e.hist.Clone(),
	}
}

// target implements the dual execution model: the in-place path applies
// a transform to the receiver, the copy path to a fresh clone.
func (e *Engine) target(copy bool) *Engine {
	if copy {
		return e.Clone()
	}
	return e
}

// validate bounds-checks resolved ordinals against the current axis
// length before anything is mutated.
func (e *Engine) validate(axis Axis, ordinals []int) error {
	n := e.Len(axis)
	for _, i := range ordinals {
		if i < 0 || i >= n {
			return &position.OutOfRangeError{Index: i, Length: n}
		}
	}
	return nil
}

// check re-asserts the metadata/matrix length invariants after a commit.
func (e *Engine) check() error {
	if err := e.mtx.Validate(); err != nil {
		return err
	}
	if e.rows.Len() != e.mtx.NRows() {
		return &DesyncError{Axis: Rows, MatrixLen: e.mtx.NRows(), MetadataLen: e.rows.Len()}
	}
	if e.cols.Len() != e.mtx.NCols() {
		return &DesyncError{Axis: Columns, MatrixLen: e.mtx.NCols(), MetadataLen: e.cols.Len()}
	}
	return nil
}
