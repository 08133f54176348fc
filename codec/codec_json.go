package codec

import "encoding/json"

// JSON encodes/decodes payloads as JSON. Note that JSON decoding yields
// float64 for all numbers.
type JSON struct{}

func (c *JSON) Encode(payload map[string]any) ([]byte, error) {
	return json.Marshal(payload)
}

func (c *JSON) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *JSON) Name() string { return NameJSON }
