package matrix

import "github.com/hupe1980/alngo/position"

// RemoveRows deletes the rows whose ordinals are in drop. Survivors keep
// their relative order and shift down to close the gaps.
func (m *Matrix) RemoveRows(drop *position.Set) {
	m.RetainRows(drop.Complement(len(m.rows)))
}

// RetainRows deletes every row whose ordinal is not in keep. Survivors
// keep their original ordinal order; retain never reorders.
func (m *Matrix) RetainRows(keep *position.Set) {
	kept := m.rows[:0]
	for i, row := range m.rows {
		if keep.Contains(i) {
			kept = append(kept, row)
		}
	}
	// Release trailing references so dropped rows can be collected.
	for i := len(kept); i < len(m.rows); i++ {
		m.rows[i] = nil
	}
	m.rows = kept
}

// RemoveColumns deletes the columns whose ordinals are in drop.
func (m *Matrix) RemoveColumns(drop *position.Set) {
	m.RetainColumns(drop.Complement(m.ncols))
}

// RetainColumns deletes every column whose ordinal is not in keep,
// preserving the original order of survivors.
func (m *Matrix) RetainColumns(keep *position.Set) {
	width := keep.Cardinality()
	for i, row := range m.rows {
		kept := row[:0]
		for j := 0; j < m.ncols; j++ {
			if keep.Contains(j) {
				kept = append(kept, row[j])
			}
		}
		m.rows[i] = kept[:width]
	}
	m.ncols = width
}

// ReorderRows rewrites row order by an explicit full permutation:
// new row k is old row perm[k].
func (m *Matrix) ReorderRows(perm []int) error {
	if err := checkPermutation(perm, len(m.rows)); err != nil {
		return err
	}
	next := make([][]byte, len(perm))
	for k, i := range perm {
		next[k] = m.rows[i]
	}
	m.rows = next
	return nil
}

// ReorderColumns rewrites column order by an explicit full permutation:
// new column k is old column perm[k].
func (m *Matrix) ReorderColumns(perm []int) error {
	if err := checkPermutation(perm, m.ncols); err != nil {
		return err
	}
	for i, row := range m.rows {
		next := make([]byte, len(perm))
		for k, j := range perm {
			next[k] = row[j]
		}
		m.rows[i] = next
	}
	return nil
}

// AppendColumns concatenates other's columns to the right of the
// receiver. Both matrices must have the same number of rows.
func (m *Matrix) AppendColumns(other *Matrix) error {
	if other.NRows() != len(m.rows) {
		return &DimensionMismatchError{Expected: len(m.rows), Actual: other.NRows(), Row: 0}
	}
	for i := range m.rows {
		m.rows[i] = append(m.rows[i], other.rows[i]...)
	}
	m.ncols += other.ncols
	return nil
}

// Validate re-checks rectangularity. A failure after an internal edit is
// an implementation defect.
func (m *Matrix) Validate() error {
	for i, row := range m.rows {
		if len(row) != m.ncols {
			return &DimensionMismatchError{Expected: m.ncols, Actual: len(row), Row: i}
		}
	}
	return nil
}

func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrBadPermutation
	}
	seen := position.NewSet()
	for _, i := range perm {
		if i < 0 || i >= n || seen.Contains(i) {
			return ErrBadPermutation
		}
		seen.Add(i)
	}
	return nil
}
