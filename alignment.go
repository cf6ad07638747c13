package alngo

import (
	"sync"

	"github.com/hupe1980/alngo/engine"
	"github.com/hupe1980/alngo/matrix"
	"github.com/hupe1980/alngo/metadata"
	"github.com/hupe1980/alngo/position"
)

// Record is the construction input and row-level exchange type: one
// sample's identifier, free-form description, aligned sequence and
// optional named fields. Identifiers need not be unique; ordinal
// position is the join key throughout.
type Record struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Sequence    string            `json:"sequence"`
	Fields      metadata.Document `json:"fields,omitempty"`
}

// ColumnItem is the joined per-site view: column metadata plus the
// vertical character slice at that position.
type ColumnItem struct {
	Position int
	Site     string
	Fields   metadata.Document
}

// Alignment is the aggregate root: matrix, row metadata, column metadata
// and alignment-level metadata, guarded by a single lock so no reader
// ever observes the matrix and its metadata at different lengths.
type Alignment struct {
	mu     sync.RWMutex
	name   string
	eng    *engine.Engine
	logger *Logger
}

// New builds an alignment from records. All sequences must have equal
// length; loaders are expected to reject ragged input before handing it
// over, and New re-checks as the construction invariant.
func New(name string, records []Record, opts ...Option) (*Alignment, error) {
	o := options{logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	seqs := make([]string, len(records))
	rowRecords := make([]metadata.RowRecord, len(records))
	for i, r := range records {
		seqs[i] = r.Sequence
		rowRecords[i] = metadata.RowRecord{ID: r.ID, Description: r.Description, Fields: r.Fields}
	}

	m, err := matrix.New(seqs)
	if err != nil {
		return nil, translateError(err)
	}

	var cols *metadata.ColumnTable
	if o.columns != nil {
		if len(o.columns) != m.NCols() {
			return nil, &DimensionMismatchError{Expected: m.NCols(), Actual: len(o.columns), Row: 0}
		}
		cols = metadata.NewColumnTableFromRecords(o.columns)
	} else {
		cols = metadata.NewColumnTable(m.NCols())
	}

	var hist *engine.History
	if !o.noHistory {
		hist = engine.NewHistory()
	}

	eng, err := engine.New(m, metadata.NewRowTable(rowRecords), cols, o.meta.Clone(), hist)
	if err != nil {
		return nil, translateError(err)
	}

	return &Alignment{name: name, eng: eng, logger: o.logger}, nil
}

// Name returns the alignment's name.
func (a *Alignment) Name() string { return a.name }

// NRows returns the number of rows (samples).
func (a *Alignment) NRows() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.Len(engine.Rows)
}

// NCols returns the number of columns (aligned sites).
func (a *Alignment) NCols() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.Len(engine.Columns)
}

// IDs returns every sample identifier in row order.
func (a *Alignment) IDs() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.RowTable().IDs()
}

// Descriptions returns every sample description in row order.
func (a *Alignment) Descriptions() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.RowTable().Descriptions()
}

// Sequences returns every row sequence in order.
func (a *Alignment) Sequences() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.Matrix().Sequences()
}

// Row returns the full sequence at position i. Negative positions count
// from the end.
func (a *Alignment) Row(i int) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ordinals, err := position.Resolve(position.Single(i), a.eng.Len(engine.Rows))
	if err != nil {
		return "", translateError(err)
	}
	return a.eng.Matrix().Row(ordinals[0]), nil
}

// Column returns the vertical character slice at position j. Negative
// positions count from the end.
func (a *Alignment) Column(j int) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ordinals, err := position.Resolve(position.Single(j), a.eng.Len(engine.Columns))
	if err != nil {
		return "", translateError(err)
	}
	return a.eng.Matrix().Column(ordinals[0]), nil
}

// Rows extracts the sequences selected by d, in the order requested.
func (a *Alignment) Rows(d position.Descriptor) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ordinals, err := position.Resolve(d, a.eng.Len(engine.Rows))
	if err != nil {
		return nil, translateError(err)
	}
	return a.eng.Matrix().Rows(ordinals), nil
}

// Columns extracts the site slices selected by d, in the order requested.
func (a *Alignment) Columns(d position.Descriptor) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ordinals, err := position.Resolve(d, a.eng.Len(engine.Columns))
	if err != nil {
		return nil, translateError(err)
	}
	return a.eng.Matrix().Columns(ordinals), nil
}

// Records returns the joined row view (row metadata × sequence) for the
// positions selected by d, in the order requested.
func (a *Alignment) Records(d position.Descriptor) ([]Record, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ordinals, err := position.Resolve(d, a.eng.Len(engine.Rows))
	if err != nil {
		return nil, translateError(err)
	}
	out := make([]Record, len(ordinals))
	for k, i := range ordinals {
		r := a.eng.RowTable().Record(i)
		out[k] = Record{
			ID:          r.ID,
			Description: r.Description,
			Sequence:    a.eng.Matrix().Row(i),
			Fields:      r.Fields.Clone(),
		}
	}
	return out, nil
}

// ColumnItems returns the joined column view (column metadata × site) for
// the positions selected by d, in the order requested.
func (a *Alignment) ColumnItems(d position.Descriptor) ([]ColumnItem, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ordinals, err := position.Resolve(d, a.eng.Len(engine.Columns))
	if err != nil {
		return nil, translateError(err)
	}
	out := make([]ColumnItem, len(ordinals))
	for k, j := range ordinals {
		out[k] = ColumnItem{
			Position: j,
			Site:     a.eng.Matrix().Column(j),
			Fields:   a.eng.ColumnTable().Record(j).Fields.Clone(),
		}
	}
	return out, nil
}

// Copy returns a deep copy. The copy owns fully independent storage, so
// later in-place edits on either side never affect the other.
func (a *Alignment) Copy() *Alignment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.wrap(a.eng.Clone())
}

// History returns the log of state-changing operations, or nil when
// tracking was disabled at construction.
func (a *Alignment) History() []engine.HistoryEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.History().Entries()
}

// wrap packages an engine into a new Alignment carrying over name and
// logger. Copies get a fresh, unlocked mutex.
func (a *Alignment) wrap(eng *engine.Engine) *Alignment {
	return &Alignment{name: a.name, eng: eng, logger: a.logger}
}
