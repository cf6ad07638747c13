package alngo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/alngo/position"
)

func TestRemoveRows(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		a := testAlignment(t)
		out, err := a.RemoveRows(position.List{1})
		require.NoError(t, err)
		assert.Same(t, a, out)
		assert.Equal(t, []string{"seq1", "seq3"}, a.IDs())
		assert.Equal(t, []string{"ACGT-A", "acgt-a"}, a.Sequences())
	})

	t.Run("copy", func(t *testing.T) {
		a := testAlignment(t)
		out, err := a.RemoveRows(position.List{1}, WithCopy())
		require.NoError(t, err)
		assert.NotSame(t, a, out)
		assert.Equal(t, 3, a.NRows())
		assert.Equal(t, 2, out.NRows())
	})

	t.Run("negative positions", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.RemoveRows(position.List{-1})
		require.NoError(t, err)
		assert.Equal(t, []string{"seq1", "seq2"}, a.IDs())
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		a := testAlignment(t)
		out, err := a.RemoveRows(position.List{})
		require.NoError(t, err)
		assert.Same(t, a, out)
		assert.Equal(t, 3, a.NRows())
	})

	t.Run("out of range leaves state untouched", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.RemoveRows(position.List{0, 99})
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, 3, a.NRows())
	})

	t.Run("remove all rows", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.RemoveRows(position.All())
		require.NoError(t, err)
		assert.Equal(t, 0, a.NRows())
	})
}

func TestRetainRows(t *testing.T) {
	t.Run("selection order does not reorder", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.RetainRows(position.List{2, 0})
		require.NoError(t, err)
		assert.Equal(t, []string{"seq1", "seq3"}, a.IDs())
	})

	t.Run("duplicates ignored", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.RetainRows(position.List{1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"seq2"}, a.IDs())
	})

	t.Run("complement of remove", func(t *testing.T) {
		removed := testAlignment(t)
		retained := testAlignment(t)

		_, err := removed.RemoveRows(position.List{1})
		require.NoError(t, err)
		_, err = retained.RetainRows(position.List{0, 2})
		require.NoError(t, err)

		assert.Equal(t, removed.IDs(), retained.IDs())
		assert.Equal(t, removed.Sequences(), retained.Sequences())
	})
}

func TestColumnsFollowMetadata(t *testing.T) {
	a := testAlignment(t)

	_, err := a.RemoveColumns(position.Range(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, a.NCols())
	assert.Equal(t, []string{"GT-A", "GTNA", "gt-a"}, a.Sequences())
	assert.Equal(t, 3, a.NRows())
}

func TestRetainColumnsSlice(t *testing.T) {
	a := testAlignment(t)

	// every second column
	_, err := a.RetainColumns(position.Slice{Start: 0, Stop: position.Auto, Step: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"AG-", "AGN", "ag-"}, a.Sequences())
}

func TestReorderRows(t *testing.T) {
	t.Run("full permutation", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.ReorderRows([]int{2, 0, 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"seq3", "seq1", "seq2"}, a.IDs())
		assert.Equal(t, []string{"acgt-a", "ACGT-A", "ACGTNA"}, a.Sequences())
	})

	t.Run("negative positions", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.ReorderRows([]int{-1, -2, -3})
		require.NoError(t, err)
		assert.Equal(t, []string{"seq3", "seq2", "seq1"}, a.IDs())
	})

	t.Run("duplicate entry rejected", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.ReorderRows([]int{0, 0, 1})
		assert.ErrorIs(t, err, ErrBadPermutation)
		assert.Equal(t, []string{"seq1", "seq2", "seq3"}, a.IDs())
	})

	t.Run("incomplete permutation rejected", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.ReorderRows([]int{0, 1})
		assert.ErrorIs(t, err, ErrBadPermutation)
	})
}

func TestReorderColumns(t *testing.T) {
	a := testAlignment(t)

	_, err := a.ReorderColumns([]int{5, 4, 3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"A-TGCA", "ANTGCA", "a-tgca"}, a.Sequences())
}

func noGap(site string) bool { return !strings.Contains(site, "-") }

func TestFilterColumns(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.FilterColumns(noGap)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 5}, report.Matched)
		assert.Equal(t, []int{4}, report.Unmatched)
		assert.Equal(t, 6, report.Total)
		assert.Same(t, a, report.Alignment)
		assert.Equal(t, 5, a.NCols())
	})

	t.Run("inverse", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.FilterColumns(noGap, WithInverse())
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 5}, report.Matched)
		assert.Equal(t, 1, a.NCols())
		col, err := a.Column(0)
		require.NoError(t, err)
		assert.Equal(t, "-N-", col)
	})

	t.Run("dry run", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.FilterColumns(noGap, WithDryRun())
		require.NoError(t, err)
		assert.Nil(t, report.Alignment)
		assert.Equal(t, []int{4}, report.Unmatched)
		assert.Equal(t, 6, a.NCols())
	})

	t.Run("dry run predicts the real partition", func(t *testing.T) {
		a := testAlignment(t)
		dry, err := a.FilterColumns(noGap, WithDryRun())
		require.NoError(t, err)
		wet, err := a.FilterColumns(noGap)
		require.NoError(t, err)
		assert.Equal(t, dry.Matched, wet.Matched)
		assert.Equal(t, dry.Unmatched, wet.Unmatched)
	})

	t.Run("copy", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.FilterColumns(noGap, WithCopy())
		require.NoError(t, err)
		assert.NotSame(t, a, report.Alignment)
		assert.Equal(t, 6, a.NCols())
		assert.Equal(t, 5, report.Alignment.NCols())
	})

	t.Run("filter to zero columns", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.FilterColumns(func(string) bool { return false })
		require.NoError(t, err)
		assert.Empty(t, report.Matched)
		assert.Equal(t, 0, a.NCols())
		assert.Equal(t, 3, a.NRows())
	})
}

func TestFilterRows(t *testing.T) {
	a := testAlignment(t)

	report, err := a.FilterRows(func(seq string) bool {
		return strings.Contains(seq, "N")
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, report.Matched)
	assert.Equal(t, []string{"seq2"}, a.IDs())
}

func TestDropColumnsWith(t *testing.T) {
	t.Run("any", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.DropColumnsWith("N", MatchAny)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, report.Matched)
		assert.Equal(t, 5, a.NCols())
	})

	t.Run("case insensitive by default", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.DropColumnsWith("n", MatchAny)
		require.NoError(t, err)
		assert.Equal(t, 5, a.NCols())
	})

	t.Run("case sensitive", func(t *testing.T) {
		a := testAlignment(t)
		_, err := a.DropColumnsWith("n", MatchAny, WithCaseSensitive())
		require.NoError(t, err)
		assert.Equal(t, 6, a.NCols())
	})

	t.Run("all", func(t *testing.T) {
		a := testAlignment(t)
		// only column 4 consists entirely of '-' and 'N'
		report, err := a.DropColumnsWith("-N", MatchAll)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, report.Matched)
		assert.Equal(t, 5, a.NCols())
	})

	t.Run("dry run", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.DropColumnsWith("-", MatchAny, WithDryRun())
		require.NoError(t, err)
		assert.Nil(t, report.Alignment)
		assert.Equal(t, []int{4}, report.Matched)
		assert.Equal(t, 6, a.NCols())
	})

	t.Run("copy", func(t *testing.T) {
		a := testAlignment(t)
		report, err := a.DropColumnsWith("-", MatchAny, WithCopy())
		require.NoError(t, err)
		assert.Equal(t, 6, a.NCols())
		assert.Equal(t, 5, report.Alignment.NCols())
	})
}

func TestDropColumnsExcept(t *testing.T) {
	a := testAlignment(t)

	report, err := a.DropColumnsExcept("ACGT-")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, report.Matched)
	assert.Equal(t, []string{"ACGTA", "ACGTA", "acgta"}, a.Sequences())
}

func TestDropAmbiguousAndGaps(t *testing.T) {
	a, err := New("mixed", []Record{
		{ID: "r1", Sequence: "AC-TN"},
		{ID: "r2", Sequence: "ACGTA"},
	})
	require.NoError(t, err)

	report, err := a.DropGaps('-')
	require.NoError(t, err)
	assert.Equal(t, []int{2}, report.Matched)

	report, err = a.DropAmbiguous('N')
	require.NoError(t, err)
	assert.Equal(t, []int{3}, report.Matched)
	assert.Equal(t, []string{"ACT", "ACT"}, a.Sequences())
}
