package position

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an ordinal set over one axis, backed by a Roaring Bitmap.
// Structural edits use it for membership tests and complements so that
// duplicate positions can never double-shift an axis.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{rb: roaring.New()}
}

// SetOf creates a set holding the given ordinals. The ordinals must
// already be resolved (non-negative).
func SetOf(indices ...int) *Set {
	s := NewSet()
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add inserts an ordinal.
func (s *Set) Add(i int) {
	s.rb.Add(uint32(i))
}

// Contains reports whether an ordinal is in the set.
func (s *Set) Contains(i int) bool {
	return i >= 0 && s.rb.Contains(uint32(i))
}

// Cardinality returns the number of ordinals in the set.
func (s *Set) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set holds no ordinals.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Complement returns the ordinals of [0, n) not present in the set.
func (s *Set) Complement(n int) *Set {
	flipped := roaring.Flip(s.rb, 0, uint64(n))
	// Members beyond the axis survive the flip untouched; trim them.
	if !flipped.IsEmpty() && int(flipped.Maximum()) >= n {
		flipped.RemoveRange(uint64(n), uint64(flipped.Maximum())+1)
	}
	return &Set{rb: flipped}
}

// Sorted returns the ordinals in ascending order.
func (s *Set) Sorted() []int {
	arr := s.rb.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// Iterator yields the ordinals in ascending order.
func (s *Set) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}
