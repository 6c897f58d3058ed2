// Package msgpackwire adapts MessagePack streams to the arraywire
// sink/source contract via github.com/vmihailenco/msgpack. The msgpack
// array header carries the length for both fixed tuples and growable
// sequences, so the two forms share one encoding.
package msgpackwire

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/rawbytedev/arraywire"
)

// Serializer writes msgpack arrays to an underlying stream.
type Serializer struct {
	enc *msgpack.Encoder
}

func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{enc: msgpack.NewEncoder(w)}
}

func (s *Serializer) SerializeTuple(n int) (arraywire.SeqSink, error) {
	return s.open(n)
}

func (s *Serializer) SerializeSeq(n int) (arraywire.SeqSink, error) {
	return s.open(n)
}

func (s *Serializer) open(n int) (arraywire.SeqSink, error) {
	if err := s.enc.EncodeArrayLen(n); err != nil {
		return nil, err
	}
	return &sink{s: s, want: n}, nil
}

type sink struct {
	s       *Serializer
	want    int
	written int
}

func (k *sink) Element(v any) error {
	k.written++
	if m, ok := v.(arraywire.Serializable); ok {
		return m.Serialize(k.s)
	}
	return k.s.enc.Encode(v)
}

func (k *sink) End() error {
	if k.written != k.want {
		return fmt.Errorf("msgpackwire: sequence declared %d elements, wrote %d", k.want, k.written)
	}
	return nil
}
