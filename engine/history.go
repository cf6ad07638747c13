package engine

import "time"

// HistoryEntry records one state-changing operation.
type HistoryEntry struct {
	Op     string    `json:"op"`
	Detail string    `json:"detail"`
	Time   time.Time `json:"time"`
}

// History is an append-only log of the operations that changed an
// alignment's state. A nil History is valid and records nothing, which
// is how tracking is disabled.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends an entry. Safe on a nil receiver.
func (h *History) Add(op, detail string) {
	if h == nil {
		return
	}
	h.entries = append(h.entries, HistoryEntry{Op: op, Detail: detail, Time: time.Now()})
}

// Entries returns a copy of the log in order of occurrence.
func (h *History) Entries() []HistoryEntry {
	if h == nil {
		return nil
	}
	return append([]HistoryEntry(nil), h.entries...)
}

// Clone returns an independent copy. Copies of an alignment start with
// the full log of the original up to the point of copying.
func (h *History) Clone() *History {
	if h == nil {
		return nil
	}
	return &History{entries: append([]HistoryEntry(nil), h.entries...)}
}
