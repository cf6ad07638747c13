package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/alngo/position"
)

func mustNew(t *testing.T, seqs ...string) *Matrix {
	t.Helper()
	m, err := New(seqs)
	require.NoError(t, err)
	return m
}

func TestNewRejectsRaggedInput(t *testing.T) {
	_, err := New([]string{"ACGT", "ACG"})
	var dim *DimensionMismatchError
	require.ErrorAs(t, err, &dim)
	assert.Equal(t, 4, dim.Expected)
	assert.Equal(t, 3, dim.Actual)
	assert.Equal(t, 1, dim.Row)
}

func TestExtraction(t *testing.T) {
	m := mustNew(t, "AACAATCGG", "TACAATCGG", "TACAATGGG")

	assert.Equal(t, 3, m.NRows())
	assert.Equal(t, 9, m.NCols())
	assert.Equal(t, "TACAATCGG", m.Row(1))
	assert.Equal(t, "ATT", m.Column(0))
	assert.Equal(t, "GGG", m.Column(8))

	// Extraction preserves request order, not ordinal order.
	assert.Equal(t, []string{"TACAATGGG", "AACAATCGG"}, m.Rows([]int{2, 0}))
	assert.Equal(t, []string{"GGG", "ATT"}, m.Columns([]int{8, 0}))
}

func TestRemoveRows(t *testing.T) {
	m := mustNew(t, "AACAATCGG", "TACAATCGG", "TACAATGGG")
	m.RemoveRows(position.SetOf(0))

	assert.Equal(t, 2, m.NRows())
	assert.Equal(t, 9, m.NCols())
	assert.Equal(t, []string{"TACAATCGG", "TACAATGGG"}, m.Sequences())
}

func TestRetainKeepsOriginalOrder(t *testing.T) {
	m := mustNew(t, "AAA", "CCC", "GGG", "TTT")
	// The set carries no order; survivors stay in ordinal order.
	m.RetainRows(position.SetOf(2, 0))

	assert.Equal(t, []string{"AAA", "GGG"}, m.Sequences())
}

func TestRemoveRetainComplementarity(t *testing.T) {
	seqs := []string{"ACGTA", "CGTAC", "GTACG"}
	drop := position.SetOf(1, 3)

	removed := mustNew(t, seqs...)
	removed.RemoveColumns(drop)

	retained := mustNew(t, seqs...)
	retained.RetainColumns(drop.Complement(5))

	assert.Equal(t, removed.Sequences(), retained.Sequences())
	assert.Equal(t, 3, removed.NCols())
}

func TestRemoveColumnsEmptySetIsNoop(t *testing.T) {
	m := mustNew(t, "ACGT", "TGCA")
	m.RemoveColumns(position.NewSet())

	assert.Equal(t, []string{"ACGT", "TGCA"}, m.Sequences())
	assert.Equal(t, 4, m.NCols())
}

func TestRetainColumnsEmptySetEmptiesAxis(t *testing.T) {
	m := mustNew(t, "ACGT", "TGCA")
	m.RetainColumns(position.NewSet())

	assert.Equal(t, 0, m.NCols())
	assert.Equal(t, 2, m.NRows())
	require.NoError(t, m.Validate())
}

func TestReorderRows(t *testing.T) {
	m := mustNew(t, "AAA", "CCC", "GGG")
	require.NoError(t, m.ReorderRows([]int{2, 0, 1}))
	assert.Equal(t, []string{"GGG", "AAA", "CCC"}, m.Sequences())

	assert.ErrorIs(t, m.ReorderRows([]int{0, 1}), ErrBadPermutation)
	assert.ErrorIs(t, m.ReorderRows([]int{0, 0, 1}), ErrBadPermutation)
	assert.ErrorIs(t, m.ReorderRows([]int{0, 1, 3}), ErrBadPermutation)
}

func TestReorderColumns(t *testing.T) {
	m := mustNew(t, "ABC", "DEF")
	require.NoError(t, m.ReorderColumns([]int{2, 1, 0}))
	assert.Equal(t, []string{"CBA", "FED"}, m.Sequences())
}

func TestAppendColumns(t *testing.T) {
	m := mustNew(t, "ACG", "TGC")
	other := mustNew(t, "TT", "AA")
	require.NoError(t, m.AppendColumns(other))

	assert.Equal(t, 5, m.NCols())
	assert.Equal(t, []string{"ACGTT", "TGCAA"}, m.Sequences())

	short := mustNew(t, "A")
	assert.Error(t, m.AppendColumns(short))
}

func TestCloneDoesNotAlias(t *testing.T) {
	m := mustNew(t, "ACGT", "TGCA")
	c := m.Clone()
	c.RemoveColumns(position.SetOf(0))

	assert.Equal(t, 4, m.NCols())
	assert.Equal(t, 3, c.NCols())
	assert.Equal(t, "ACGT", m.Row(0))
	assert.Equal(t, "CGT", c.Row(0))
}
