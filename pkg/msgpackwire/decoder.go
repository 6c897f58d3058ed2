package msgpackwire

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/rawbytedev/arraywire"
)

// Deserializer reads msgpack arrays from an underlying stream.
type Deserializer struct {
	dec *msgpack.Decoder
}

func NewDeserializer(r io.Reader) *Deserializer {
	return &Deserializer{dec: msgpack.NewDecoder(r)}
}

// DeserializeTuple consumes the array header. The header length bounds the
// source; the caller still counts elements against its own n.
func (d *Deserializer) DeserializeTuple(_ int) (arraywire.SeqSource, error) {
	l, err := d.dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if l < 0 { // nil array
		l = 0
	}
	return &source{dec: d.dec, left: l}, nil
}

type source struct {
	dec  *msgpack.Decoder
	left int
}

func (s *source) Next(v any) (bool, error) {
	if s.left == 0 {
		return false, nil
	}
	if err := s.dec.Decode(v); err != nil {
		return false, err
	}
	s.left--
	return true, nil
}
