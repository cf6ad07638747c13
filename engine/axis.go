package engine

// Axis selects the dimension a structural edit applies to.
type Axis int

const (
	// Rows is the sample axis.
	Rows Axis = iota
	// Columns is the aligned-site axis.
	Columns
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return "invalid"
	}
}
