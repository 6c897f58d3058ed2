package cborwire

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/rawbytedev/arraywire"
)

// Deserializer reads a CBOR array from a byte slice.
type Deserializer struct {
	data []byte
}

func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{data: data}
}

// DeserializeTuple splits the input array into raw element encodings; each
// element is only decoded when the source reaches it.
func (d *Deserializer) DeserializeTuple(_ int) (arraywire.SeqSource, error) {
	var items []cbor.RawMessage
	if err := cbor.Unmarshal(d.data, &items); err != nil {
		return nil, err
	}
	return &source{items: items}, nil
}

type source struct {
	items []cbor.RawMessage
	pos   int
}

func (s *source) Next(v any) (bool, error) {
	if s.pos == len(s.items) {
		return false, nil
	}
	if err := cbor.Unmarshal(s.items[s.pos], v); err != nil {
		return false, err
	}
	s.pos++
	return true, nil
}
