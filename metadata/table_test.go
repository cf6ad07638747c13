package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/alngo/position"
)

func sampleRows() *RowTable {
	return NewRowTable([]RowRecord{
		{ID: "seq1", Description: "description1"},
		{ID: "seq2", Description: ""},
		{ID: "seq3", Description: "description3"},
	})
}

func TestRowTableRemoveMirrorsMatrixEdit(t *testing.T) {
	rt := sampleRows()
	rt.Remove(position.SetOf(0))

	require.Equal(t, 2, rt.Len())
	assert.Equal(t, []string{"seq2", "seq3"}, rt.IDs())
	assert.Equal(t, []string{"", "description3"}, rt.Descriptions())
}

func TestRowTableRetainPreservesOriginalOrder(t *testing.T) {
	rt := sampleRows()
	rt.Retain(position.SetOf(2, 0))

	assert.Equal(t, []string{"seq1", "seq3"}, rt.IDs())
}

func TestRowTableReorder(t *testing.T) {
	rt := sampleRows()
	rt.Reorder([]int{1, 2, 0})

	assert.Equal(t, []string{"seq2", "seq3", "seq1"}, rt.IDs())
}

func TestRowTableFields(t *testing.T) {
	rt := sampleRows()

	require.NoError(t, rt.AddField("coverage", []Value{Int(10), Int(47), Int(15)}))
	assert.ErrorIs(t, rt.AddField("coverage", []Value{Int(1), Int(2), Int(3)}), ErrFieldExists)
	assert.ErrorIs(t, rt.AddField("depth", []Value{Int(1)}), ErrLengthMismatch)

	values, ok := rt.Field("coverage")
	require.True(t, ok)
	got, ok := values[1].AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(47), got)

	require.NoError(t, rt.RemoveField("coverage"))
	assert.ErrorIs(t, rt.RemoveField("coverage"), ErrFieldUnknown)
}

func TestRowTableFieldsFollowStructuralEdits(t *testing.T) {
	rt := sampleRows()
	require.NoError(t, rt.AddField("tag", []Value{String("a"), String("b"), String("c")}))

	rt.Remove(position.SetOf(1))

	values, ok := rt.Field("tag")
	require.True(t, ok)
	assert.Equal(t, []Value{String("a"), String("c")}, values)
}

func TestRowTableCloneDoesNotAlias(t *testing.T) {
	rt := sampleRows()
	require.NoError(t, rt.AddField("tag", []Value{String("a"), String("b"), String("c")}))

	c := rt.Clone()
	c.Remove(position.SetOf(0))
	require.NoError(t, c.RemoveField("tag"))

	assert.Equal(t, 3, rt.Len())
	_, ok := rt.Field("tag")
	assert.True(t, ok)
}

func TestColumnTable(t *testing.T) {
	ct := NewColumnTable(4)
	require.Equal(t, 4, ct.Len())

	require.NoError(t, ct.AddField("score", []Value{Float(0.1), Float(0.2), Float(0.3), Float(0.4)}))
	ct.Remove(position.SetOf(1, 2))

	require.Equal(t, 2, ct.Len())
	values, ok := ct.Field("score")
	require.True(t, ok)
	assert.Equal(t, []Value{Float(0.1), Float(0.4)}, values)
}

func TestColumnTableSetFieldReplaces(t *testing.T) {
	ct := NewColumnTable(2)
	require.NoError(t, ct.SetField("src", []Value{String("a"), String("a")}))
	require.NoError(t, ct.SetField("src", []Value{String("b"), String("b")}))

	values, ok := ct.Field("src")
	require.True(t, ok)
	assert.Equal(t, []Value{String("b"), String("b")}, values)
}

func TestColumnTableAppend(t *testing.T) {
	a := NewColumnTable(2)
	require.NoError(t, a.SetField("origin", []Value{String("x"), String("x")}))
	b := NewColumnTable(1)
	require.NoError(t, b.SetField("origin", []Value{String("y")}))

	a.Append(b)

	require.Equal(t, 3, a.Len())
	values, ok := a.Field("origin")
	require.True(t, ok)
	assert.Equal(t, []Value{String("x"), String("x"), String("y")}, values)
}

func TestDocumentCloneIsDeep(t *testing.T) {
	d := Document{"list": Array(Int(1), Int(2))}
	c := d.Clone()
	c["list"].A[0] = Int(99)

	got, ok := d["list"].AsArray()
	require.True(t, ok)
	assert.Equal(t, Int(1), got[0])
}
