package matrix

// Matrix is a rectangular character matrix: nrows sequences of ncols
// single-character codes (nucleotide or amino-acid alphabets plus gap
// and ambiguity symbols). The zero-row and zero-column states are valid.
type Matrix struct {
	rows  [][]byte
	ncols int
}

// New builds a matrix from raw sequences. All sequences must have equal
// length; the first divergent row is reported in the error.
func New(seqs []string) (*Matrix, error) {
	m := &Matrix{rows: make([][]byte, len(seqs))}
	if len(seqs) > 0 {
		m.ncols = len(seqs[0])
	}
	for i, s := range seqs {
		if len(s) != m.ncols {
			return nil, &DimensionMismatchError{Expected: m.ncols, Actual: len(s), Row: i}
		}
		m.rows[i] = []byte(s)
	}
	return m, nil
}

// NRows returns the number of rows (samples).
func (m *Matrix) NRows() int { return len(m.rows) }

// NCols returns the number of columns (aligned sites).
func (m *Matrix) NCols() int { return m.ncols }

// Row returns the full sequence at ordinal i.
func (m *Matrix) Row(i int) string { return string(m.rows[i]) }

// Column returns the vertical slice at ordinal j, one character per row
// reading top to bottom.
func (m *Matrix) Column(j int) string {
	col := make([]byte, len(m.rows))
	for i, row := range m.rows {
		col[i] = row[j]
	}
	return string(col)
}

// Rows extracts the rows at the given ordinals, in the order requested.
func (m *Matrix) Rows(indices []int) []string {
	out := make([]string, len(indices))
	for k, i := range indices {
		out[k] = m.Row(i)
	}
	return out
}

// Columns extracts the columns at the given ordinals, in the order
// requested.
func (m *Matrix) Columns(indices []int) []string {
	out := make([]string, len(indices))
	for k, j := range indices {
		out[k] = m.Column(j)
	}
	return out
}

// Sequences returns every row in order.
func (m *Matrix) Sequences() []string {
	out := make([]string, len(m.rows))
	for i := range m.rows {
		out[i] = string(m.rows[i])
	}
	return out
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: make([][]byte, len(m.rows)), ncols: m.ncols}
	for i, row := range m.rows {
		c.rows[i] = append([]byte(nil), row...)
	}
	return c
}
