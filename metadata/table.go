package metadata

import (
	"errors"
	"fmt"

	"github.com/hupe1980/alngo/position"
)

var (
	// ErrFieldExists is returned when adding a named field that is
	// already present on a table.
	ErrFieldExists = errors.New("field already exists")

	// ErrFieldUnknown is returned when removing a named field no record
	// carries.
	ErrFieldUnknown = errors.New("field does not exist")

	// ErrLengthMismatch is returned when field values do not cover every
	// record of the table exactly once.
	ErrLengthMismatch = errors.New("field length does not match table length")
)

// RowRecord describes one sample: its identifier, free-form description
// and arbitrary named fields. Identifiers need not be unique; ordinal
// position is the sole join key to the matrix.
type RowRecord struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Fields      Document `json:"fields,omitempty"`
}

// ColumnRecord describes one aligned site. It starts without fields and
// accumulates them through AddField.
type ColumnRecord struct {
	Fields Document `json:"fields,omitempty"`
}

// RowTable is the ordered per-sample metadata table. Entry i always
// describes matrix row i.
type RowTable struct {
	records []RowRecord
}

// NewRowTable builds a table from records, deep-copying their fields.
func NewRowTable(records []RowRecord) *RowTable {
	t := &RowTable{records: make([]RowRecord, len(records))}
	for i, r := range records {
		r.Fields = r.Fields.Clone()
		t.records[i] = r
	}
	return t
}

// Len returns the number of records.
func (t *RowTable) Len() int { return len(t.records) }

// Record returns the record at ordinal i.
func (t *RowTable) Record(i int) RowRecord { return t.records[i] }

// IDs returns every identifier in order.
func (t *RowTable) IDs() []string {
	out := make([]string, len(t.records))
	for i, r := range t.records {
		out[i] = r.ID
	}
	return out
}

// Descriptions returns every description in order.
func (t *RowTable) Descriptions() []string {
	out := make([]string, len(t.records))
	for i, r := range t.records {
		out[i] = r.Description
	}
	return out
}

// Remove deletes the records at the ordinals in drop.
func (t *RowTable) Remove(drop *position.Set) {
	t.Retain(drop.Complement(len(t.records)))
}

// Retain deletes every record whose ordinal is not in keep, preserving
// original order.
func (t *RowTable) Retain(keep *position.Set) {
	t.records = retain(t.records, keep)
}

// Reorder rewrites record order: new record k is old record perm[k].
// The permutation must already be validated against the table length.
func (t *RowTable) Reorder(perm []int) {
	t.records = reorder(t.records, perm)
}

// Append adds other's records after the receiver's.
func (t *RowTable) Append(other *RowTable) {
	for _, r := range other.records {
		r.Fields = r.Fields.Clone()
		t.records = append(t.records, r)
	}
}

// AddField attaches one value per record under a new field name.
func (t *RowTable) AddField(name string, values []Value) error {
	if len(values) != len(t.records) {
		return fmt.Errorf("%w: %d values for %d rows", ErrLengthMismatch, len(values), len(t.records))
	}
	for _, r := range t.records {
		if _, ok := r.Fields[name]; ok {
			return fmt.Errorf("%w: %q", ErrFieldExists, name)
		}
	}
	for i := range t.records {
		if t.records[i].Fields == nil {
			t.records[i].Fields = make(Document, 1)
		}
		t.records[i].Fields[name] = values[i]
	}
	return nil
}

// RemoveField detaches a named field from every record.
func (t *RowTable) RemoveField(name string) error {
	return removeField(name, t.records, func(r *RowRecord) Document { return r.Fields })
}

// Field returns the per-record values of a named field. Records missing
// the field contribute a null Value.
func (t *RowTable) Field(name string) ([]Value, bool) {
	return field(name, t.records, func(r RowRecord) Document { return r.Fields })
}

// Clone returns a deep copy of the table.
func (t *RowTable) Clone() *RowTable {
	return NewRowTable(t.records)
}

// ColumnTable is the ordered per-site metadata table. Entry j always
// describes matrix column j.
type ColumnTable struct {
	records []ColumnRecord
}

// NewColumnTable builds a table of n initially field-less records.
func NewColumnTable(n int) *ColumnTable {
	return &ColumnTable{records: make([]ColumnRecord, n)}
}

// NewColumnTableFromRecords builds a table from records, deep-copying
// their fields.
func NewColumnTableFromRecords(records []ColumnRecord) *ColumnTable {
	t := &ColumnTable{records: make([]ColumnRecord, len(records))}
	for j, r := range records {
		r.Fields = r.Fields.Clone()
		t.records[j] = r
	}
	return t
}

// Records returns a deep copy of every record in order.
func (t *ColumnTable) Records() []ColumnRecord {
	out := make([]ColumnRecord, len(t.records))
	for j, r := range t.records {
		r.Fields = r.Fields.Clone()
		out[j] = r
	}
	return out
}

// Len returns the number of records.
func (t *ColumnTable) Len() int { return len(t.records) }

// Record returns the record at ordinal j.
func (t *ColumnTable) Record(j int) ColumnRecord { return t.records[j] }

// Remove deletes the records at the ordinals in drop.
func (t *ColumnTable) Remove(drop *position.Set) {
	t.Retain(drop.Complement(len(t.records)))
}

// Retain deletes every record whose ordinal is not in keep, preserving
// original order.
func (t *ColumnTable) Retain(keep *position.Set) {
	t.records = retain(t.records, keep)
}

// Reorder rewrites record order: new record k is old record perm[k].
// The permutation must already be validated against the table length.
func (t *ColumnTable) Reorder(perm []int) {
	t.records = reorder(t.records, perm)
}

// Append adds other's records after the receiver's.
func (t *ColumnTable) Append(other *ColumnTable) {
	for _, r := range other.records {
		r.Fields = r.Fields.Clone()
		t.records = append(t.records, r)
	}
}

// AddField attaches one value per record under a new field name.
func (t *ColumnTable) AddField(name string, values []Value) error {
	if len(values) != len(t.records) {
		return fmt.Errorf("%w: %d values for %d columns", ErrLengthMismatch, len(values), len(t.records))
	}
	for _, r := range t.records {
		if _, ok := r.Fields[name]; ok {
			return fmt.Errorf("%w: %q", ErrFieldExists, name)
		}
	}
	for j := range t.records {
		if t.records[j].Fields == nil {
			t.records[j].Fields = make(Document, 1)
		}
		t.records[j].Fields[name] = values[j]
	}
	return nil
}

// SetField attaches or replaces one value per record under a field name.
// Unlike AddField it does not fail on an existing field; Join uses it for
// provenance columns.
func (t *ColumnTable) SetField(name string, values []Value) error {
	if len(values) != len(t.records) {
		return fmt.Errorf("%w: %d values for %d columns", ErrLengthMismatch, len(values), len(t.records))
	}
	for j := range t.records {
		if t.records[j].Fields == nil {
			t.records[j].Fields = make(Document, 1)
		}
		t.records[j].Fields[name] = values[j]
	}
	return nil
}

// RemoveField detaches a named field from every record.
func (t *ColumnTable) RemoveField(name string) error {
	return removeField(name, t.records, func(r *ColumnRecord) Document { return r.Fields })
}

// Field returns the per-record values of a named field. Records missing
// the field contribute a null Value.
func (t *ColumnTable) Field(name string) ([]Value, bool) {
	return field(name, t.records, func(r ColumnRecord) Document { return r.Fields })
}

// Clone returns a deep copy of the table.
func (t *ColumnTable) Clone() *ColumnTable {
	c := &ColumnTable{records: make([]ColumnRecord, len(t.records))}
	for j, r := range t.records {
		r.Fields = r.Fields.Clone()
		c.records[j] = r
	}
	return c
}

func retain[R any](records []R, keep *position.Set) []R {
	kept := records[:0]
	for i := range records {
		if keep.Contains(i) {
			kept = append(kept, records[i])
		}
	}
	var zero R
	for i := len(kept); i < len(records); i++ {
		records[i] = zero
	}
	return kept
}

func reorder[R any](records []R, perm []int) []R {
	next := make([]R, len(perm))
	for k, i := range perm {
		next[k] = records[i]
	}
	return next
}

func removeField[R any](name string, records []R, fields func(*R) Document) error {
	found := false
	for i := range records {
		if _, ok := fields(&records[i])[name]; ok {
			delete(fields(&records[i]), name)
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrFieldUnknown, name)
	}
	return nil
}

func field[R any](name string, records []R, fields func(R) Document) ([]Value, bool) {
	found := false
	out := make([]Value, len(records))
	for i, r := range records {
		v, ok := fields(r)[name]
		if !ok {
			v = Null()
		} else {
			found = true
		}
		out[i] = v
	}
	return out, found
}
