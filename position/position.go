package position

import "math"

// Auto marks a Slice bound as "use the Python default for the step sign".
const Auto = math.MinInt

// Descriptor selects positions along one axis. Implementations are the
// three descriptor shapes: Single, List and Slice.
type Descriptor interface {
	resolve(n int) ([]int, error)
}

// Single selects one position. Negative values count from the end
// (-1 is the last position).
type Single int

func (s Single) resolve(n int) ([]int, error) {
	i, err := normalize(int(s), n)
	if err != nil {
		return nil, err
	}
	return []int{i}, nil
}

// List selects several positions. Each entry is validated independently;
// duplicates collapse to the first occurrence, preserving request order.
type List []int

func (l List) resolve(n int) ([]int, error) {
	out := make([]int, 0, len(l))
	seen := NewSet()
	for _, raw := range l {
		i, err := normalize(raw, n)
		if err != nil {
			return nil, err
		}
		if seen.Contains(i) {
			continue
		}
		seen.Add(i)
		out = append(out, i)
	}
	return out, nil
}

// Slice selects a half-open range with Python slice semantics.
//
// Start, Stop and Step default via Auto: step defaults to 1; for a
// positive step start/stop default to the axis bounds, for a negative
// step they default to the reversed bounds. Out-of-range bounds clamp
// instead of failing, so Slice never produces an OutOfRangeError.
type Slice struct {
	Start int
	Stop  int
	Step  int
}

// All selects every position in order.
func All() Slice { return Slice{Start: Auto, Stop: Auto, Step: Auto} }

// Range selects [start, stop) with step 1.
func Range(start, stop int) Slice { return Slice{Start: start, Stop: stop, Step: Auto} }

func (s Slice) resolve(n int) ([]int, error) {
	step := s.Step
	if step == Auto {
		step = 1
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	var start, stop int
	if step > 0 {
		start = clamp(s.Start, 0, n, 0, n)
		stop = clamp(s.Stop, n, n, 0, n)
	} else {
		start = clamp(s.Start, n-1, n, -1, n-1)
		stop = clamp(s.Stop, -1, n, -1, n-1)
	}

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

// clamp applies Python bound normalization: Auto becomes def, negative
// values shift by n, and the result is clamped to [lo, hi].
func clamp(v, def, n, lo, hi int) int {
	if v == Auto {
		return def
	}
	if v < 0 {
		v += n
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalize shifts a negative position by n and bounds-checks the result.
func normalize(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, &OutOfRangeError{Index: i, Length: n}
	}
	return j, nil
}

// Resolve converts a descriptor into concrete ordinals for an axis of
// length n. The result is deduplicated and preserves the order positions
// were requested in; it is not necessarily ascending.
func Resolve(d Descriptor, n int) ([]int, error) {
	return d.resolve(n)
}
