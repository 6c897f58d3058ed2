// Package cborwire adapts CBOR to the arraywire sink/source contract via
// github.com/fxamacker/cbor. The library has no streaming array writer, so
// the sink stages raw element encodings and emits the whole array on End;
// the result is byte-identical to cbor.Marshal of the equivalent slice.
package cborwire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/rawbytedev/arraywire"
)

// Serializer writes CBOR arrays to w.
type Serializer struct {
	w io.Writer
}

func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{w: w}
}

func (s *Serializer) SerializeTuple(n int) (arraywire.SeqSink, error) {
	return s.open(n)
}

func (s *Serializer) SerializeSeq(n int) (arraywire.SeqSink, error) {
	return s.open(n)
}

func (s *Serializer) open(n int) (arraywire.SeqSink, error) {
	return &sink{s: s, want: n, items: make([]cbor.RawMessage, 0, n)}, nil
}

type sink struct {
	s     *Serializer
	want  int
	items []cbor.RawMessage
}

func (k *sink) Element(v any) error {
	if m, ok := v.(arraywire.Serializable); ok {
		var buf bytes.Buffer
		if err := m.Serialize(NewSerializer(&buf)); err != nil {
			return err
		}
		k.items = append(k.items, cbor.RawMessage(buf.Bytes()))
		return nil
	}
	b, err := cbor.Marshal(v)
	if err != nil {
		return err
	}
	k.items = append(k.items, cbor.RawMessage(b))
	return nil
}

func (k *sink) End() error {
	if len(k.items) != k.want {
		return fmt.Errorf("cborwire: sequence declared %d elements, wrote %d", k.want, len(k.items))
	}
	b, err := cbor.Marshal(k.items)
	if err != nil {
		return err
	}
	_, err = k.s.w.Write(b)
	return err
}
