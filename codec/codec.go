// Package codec centralizes snapshot payload encoding.
//
// Codec selection is a breaking-change boundary: snapshots store the
// codec name in their header, so bytes written by one codec are only
// decoded by the same codec.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Snapshot files record the codec name in their header and select the
// codec through ByName when loading.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = JSON{}
