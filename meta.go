package alngo

import "github.com/hupe1980/alngo/metadata"

// Metadata returns a deep copy of the alignment-level metadata document.
func (a *Alignment) Metadata() metadata.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.Meta().Clone()
}

// SetMeta sets one alignment-level metadata entry.
func (a *Alignment) SetMeta(key string, value metadata.Value) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.eng.Meta()[key] = value
}

// DeleteMeta removes one alignment-level metadata entry. Deleting a key
// that is not present is a no-op.
func (a *Alignment) DeleteMeta(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.eng.Meta(), key)
}

// AddRowField attaches a named field to every row. values must have one
// entry per row; the name must not already exist.
func (a *Alignment) AddRowField(name string, values []metadata.Value) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.RowTable().AddField(name, values)
}

// RemoveRowField detaches a named row field.
func (a *Alignment) RemoveRowField(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.RowTable().RemoveField(name)
}

// RowField returns the values of a named row field, one per row in
// order. The second result is false when the field does not exist.
func (a *Alignment) RowField(name string) ([]metadata.Value, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.RowTable().Field(name)
}

// AddColumnField attaches a named field to every column. values must
// have one entry per column; the name must not already exist.
func (a *Alignment) AddColumnField(name string, values []metadata.Value) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.ColumnTable().AddField(name, values)
}

// RemoveColumnField detaches a named column field.
func (a *Alignment) RemoveColumnField(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.ColumnTable().RemoveField(name)
}

// ColumnField returns the values of a named column field, one per column
// in order. The second result is false when the field does not exist.
func (a *Alignment) ColumnField(name string) ([]metadata.Value, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.eng.ColumnTable().Field(name)
}
