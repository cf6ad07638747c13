package alngo

// Variants returns, for every column, the count of each character
// occurring in that column's site. The slice has one map per column in
// position order.
func (a *Alignment) Variants() []map[byte]int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	m := a.eng.Matrix()
	out := make([]map[byte]int, m.NCols())
	for j := range out {
		counts := make(map[byte]int)
		site := m.Column(j)
		for i := 0; i < len(site); i++ {
			counts[site[i]]++
		}
		out[j] = counts
	}
	return out
}

// Consensus returns one byte per column: the most frequent character at
// that position if its share of rows is at least threshold, zero
// otherwise. Ties break toward the character that first reaches the
// winning count scanning the site top to bottom. A threshold of 0 always
// yields the plurality character; an empty alignment yields an empty
// result.
func (a *Alignment) Consensus(threshold float64) []byte {
	a.mu.RLock()
	defer a.mu.RUnlock()

	m := a.eng.Matrix()
	nrows := m.NRows()
	out := make([]byte, m.NCols())
	if nrows == 0 {
		return out
	}
	for j := range out {
		site := m.Column(j)
		counts := make(map[byte]int)
		var best byte
		bestCount := 0
		for i := 0; i < len(site); i++ {
			c := site[i]
			counts[c]++
			if counts[c] > bestCount {
				best, bestCount = c, counts[c]
			}
		}
		if float64(bestCount)/float64(nrows) >= threshold {
			out[j] = best
		}
	}
	return out
}
