package alngo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/alngo/position"
)

func joinFixtures(t *testing.T) (*Alignment, *Alignment) {
	t.Helper()
	a, err := New("left", []Record{
		{ID: "r1", Sequence: "ACGT"},
		{ID: "r2", Sequence: "TGCA"},
	})
	require.NoError(t, err)
	b, err := New("right", []Record{
		{ID: "r1", Sequence: "--A"},
		{ID: "r2", Sequence: "GGT"},
	})
	require.NoError(t, err)
	return a, b
}

func TestJoin(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		a, b := joinFixtures(t)

		out, err := a.Join([]*Alignment{b})
		require.NoError(t, err)
		assert.Same(t, a, out)
		assert.Equal(t, 7, a.NCols())
		assert.Equal(t, []string{"ACGT--A", "TGCAGGT"}, a.Sequences())
		assert.Equal(t, 3, b.NCols())
	})

	t.Run("source provenance", func(t *testing.T) {
		a, b := joinFixtures(t)

		_, err := a.Join([]*Alignment{b})
		require.NoError(t, err)

		values, ok := a.ColumnField(SourceField)
		require.True(t, ok)
		require.Len(t, values, 7)
		for j, v := range values {
			name, _ := v.AsString()
			if j < 4 {
				assert.Equal(t, "left", name)
			} else {
				assert.Equal(t, "right", name)
			}
		}
	})

	t.Run("copy", func(t *testing.T) {
		a, b := joinFixtures(t)

		out, err := a.Join([]*Alignment{b}, WithCopy())
		require.NoError(t, err)
		assert.NotSame(t, a, out)
		assert.Equal(t, 4, a.NCols())
		assert.Equal(t, 7, out.NCols())
	})

	t.Run("copy with no sources", func(t *testing.T) {
		a, _ := joinFixtures(t)

		out, err := a.Join(nil, WithCopy())
		require.NoError(t, err)
		assert.NotSame(t, a, out)

		_, ok := a.ColumnField(SourceField)
		assert.False(t, ok, "original's column metadata must stay untouched")
		values, ok := out.ColumnField(SourceField)
		require.True(t, ok)
		assert.Len(t, values, 4)

		_, err = out.RemoveColumns(position.List{0})
		require.NoError(t, err)
		assert.Equal(t, 4, a.NCols())
		assert.Equal(t, 3, out.NCols())
	})

	t.Run("multiple sources", func(t *testing.T) {
		a, b := joinFixtures(t)
		c, err := New("third", []Record{
			{ID: "r1", Sequence: "TT"},
			{ID: "r2", Sequence: "AA"},
		})
		require.NoError(t, err)

		_, err = a.Join([]*Alignment{b, c})
		require.NoError(t, err)
		assert.Equal(t, 9, a.NCols())
	})

	t.Run("row count mismatch", func(t *testing.T) {
		a, _ := joinFixtures(t)
		odd, err := New("odd", []Record{{ID: "x", Sequence: "AC"}})
		require.NoError(t, err)

		_, err = a.Join([]*Alignment{odd})
		assert.ErrorIs(t, err, ErrRowCountMismatch)
		assert.Equal(t, 4, a.NCols())
	})

	t.Run("self join", func(t *testing.T) {
		a, _ := joinFixtures(t)

		_, err := a.Join([]*Alignment{a})
		require.NoError(t, err)
		assert.Equal(t, 8, a.NCols())
		assert.Equal(t, []string{"ACGTACGT", "TGCATGCA"}, a.Sequences())
	})
}
