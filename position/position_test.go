package position

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSingle(t *testing.T) {
	tests := []struct {
		name    string
		in      Single
		n       int
		want    []int
		wantErr bool
	}{
		{name: "first", in: Single(0), n: 5, want: []int{0}},
		{name: "last via negative", in: Single(-1), n: 5, want: []int{4}},
		{name: "lowest negative", in: Single(-5), n: 5, want: []int{0}},
		{name: "upper bound exceeded", in: Single(5), n: 5, wantErr: true},
		{name: "lower bound exceeded", in: Single(-6), n: 5, wantErr: true},
		{name: "empty axis", in: Single(0), n: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in, tt.n)
			if tt.wantErr {
				var oor *OutOfRangeError
				require.Error(t, err)
				require.True(t, errors.As(err, &oor))
				assert.Equal(t, tt.n, oor.Length)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveList(t *testing.T) {
	tests := []struct {
		name    string
		in      List
		n       int
		want    []int
		wantErr bool
	}{
		{name: "preserves request order", in: List{3, 0, 2}, n: 5, want: []int{3, 0, 2}},
		{name: "duplicates collapse to first occurrence", in: List{2, 0, 2, 2}, n: 5, want: []int{2, 0}},
		{name: "negative and positive alias collapse", in: List{4, -1}, n: 5, want: []int{4}},
		{name: "empty list", in: List{}, n: 5, want: []int{}},
		{name: "any invalid entry fails", in: List{0, 7}, n: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in, tt.n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSlice(t *testing.T) {
	tests := []struct {
		name string
		in   Slice
		n    int
		want []int
	}{
		{name: "all defaults", in: All(), n: 4, want: []int{0, 1, 2, 3}},
		{name: "simple range", in: Range(1, 3), n: 5, want: []int{1, 2}},
		{name: "stop clamps to length", in: Range(2, 100), n: 5, want: []int{2, 3, 4}},
		{name: "negative start", in: Range(-2, Auto), n: 5, want: []int{3, 4}},
		{name: "negative stop", in: Range(0, -1), n: 5, want: []int{0, 1, 2, 3}},
		{name: "step two", in: Slice{Start: 0, Stop: Auto, Step: 2}, n: 5, want: []int{0, 2, 4}},
		{name: "reverse", in: Slice{Start: Auto, Stop: Auto, Step: -1}, n: 4, want: []int{3, 2, 1, 0}},
		{name: "reverse partial", in: Slice{Start: 3, Stop: 0, Step: -1}, n: 5, want: []int{3, 2, 1}},
		{name: "reverse step two", in: Slice{Start: Auto, Stop: Auto, Step: -2}, n: 5, want: []int{4, 2, 0}},
		{name: "empty window", in: Range(3, 1), n: 5, want: nil},
		{name: "empty axis", in: All(), n: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSliceZeroStep(t *testing.T) {
	_, err := Resolve(Slice{Start: 0, Stop: 3, Step: 0}, 5)
	require.ErrorIs(t, err, ErrZeroStep)
}

func TestSetComplement(t *testing.T) {
	s := SetOf(0, 2, 4)
	got := s.Complement(5).Sorted()
	assert.Equal(t, []int{1, 3}, got)

	assert.Equal(t, []int{0, 1, 2}, NewSet().Complement(3).Sorted())
	assert.Empty(t, SetOf(0, 1, 2).Complement(3).Sorted())
}

func TestSetCloneIndependence(t *testing.T) {
	s := SetOf(1, 2)
	c := s.Clone()
	c.Add(9)

	assert.False(t, s.Contains(9))
	assert.True(t, c.Contains(9))
	assert.Equal(t, 2, s.Cardinality())
}

func TestSetIterator(t *testing.T) {
	s := SetOf(3, 1, 2)
	var got []int
	for i := range s.Iterator() {
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}
