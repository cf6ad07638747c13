package alngo

import (
	"fmt"

	"github.com/hupe1980/alngo/engine"
	"github.com/hupe1980/alngo/metadata"
)

// SourceField is the column field Join writes to record which source
// alignment each column came from.
const SourceField = "_src_name"

// Join concatenates the columns of the given alignments, in order, to the
// right of the receiver's. All alignments must have the same number of
// rows; on a mismatch nothing is changed and ErrRowCountMismatch is
// returned. Every column of the result carries a SourceField value naming
// the alignment it came from, the receiver's own columns included. With
// WithCopy the receiver stays untouched and the joined copy is returned.
func (a *Alignment) Join(others []*Alignment, opts ...EditOption) (*Alignment, error) {
	o := newEditOptions(opts)

	type segment struct {
		name  string
		eng   *engine.Engine
		ncols int
	}

	segments := make([]segment, 0, len(others))
	for _, other := range others {
		other.mu.RLock()
		seg := segment{name: other.name, eng: other.eng.Clone(), ncols: other.eng.Len(engine.Columns)}
		other.mu.RUnlock()
		segments = append(segments, seg)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	nrows := a.eng.Len(engine.Rows)
	for _, seg := range segments {
		if seg.eng.Len(engine.Rows) != nrows {
			return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
				ErrRowCountMismatch, seg.name, seg.eng.Len(engine.Rows), a.name, nrows)
		}
	}

	t := a.eng
	if o.copy {
		t = a.eng.Clone()
	}
	values := sourceValues(a.name, a.eng.Len(engine.Columns))
	for _, seg := range segments {
		var err error
		t, err = t.AppendColumns(seg.eng, false)
		if err != nil {
			return nil, translateError(err)
		}
		values = append(values, sourceValues(seg.name, seg.ncols)...)
	}

	if err := t.ColumnTable().SetField(SourceField, values); err != nil {
		return nil, translateError(err)
	}

	out := a
	if o.copy {
		out = a.wrap(t)
	}

	a.logger.LogJoin(len(segments)+1, t.Len(engine.Columns))

	return out, nil
}

func sourceValues(name string, n int) []metadata.Value {
	values := make([]metadata.Value, n)
	for j := range values {
		values[j] = metadata.String(name)
	}
	return values
}
