package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// Alignment snapshots are map- and list-shaped, which JSON encodes
// portably and stably. Implement Codec to plug in a custom encoding
// (e.g. protobuf/msgpack) where snapshots support it.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
