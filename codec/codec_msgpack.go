package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack encodes/decodes payloads as MessagePack.
type Msgpack struct{}

func (c *Msgpack) Encode(payload map[string]any) ([]byte, error) {
	return msgpack.Marshal(payload)
}

func (c *Msgpack) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *Msgpack) Name() string { return NameMsgpack }
