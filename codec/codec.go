// Package codec provides the serialization formats for job payloads.
// Payloads are flat string-keyed maps of plain data; the external queue
// sees only the encoded bytes.
package codec

// Codec encodes and decodes job payloads.
type Codec interface {
	// Encode serializes a payload map to bytes.
	Encode(payload map[string]any) ([]byte, error)

	// Decode deserializes bytes into a payload map.
	Decode(data []byte) (map[string]any, error)

	// Name returns the codec identifier (e.g., "json", "msgpack").
	Name() string
}

// Codec name constants.
const (
	NameJSON    = "json"
	NameMsgpack = "msgpack"
)

// Get returns a codec by name. Defaults to JSON.
func Get(name string) Codec {
	switch name {
	case NameMsgpack:
		return &Msgpack{}
	case NameJSON, "":
		return &JSON{}
	default:
		return &JSON{}
	}
}
