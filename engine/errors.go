package engine

import "fmt"

// DesyncError reports a metadata table whose length diverged from its
// matrix axis. It signals an implementation defect, not a user error:
// public operations validate all inputs before mutating anything.
type DesyncError struct {
	Axis        Axis
	MatrixLen   int
	MetadataLen int
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("%s metadata out of sync: matrix has %d, metadata has %d", e.Axis, e.MatrixLen, e.MetadataLen)
}
