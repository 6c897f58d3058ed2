// Package jsonwire adapts JSON streams to the arraywire sink/source
// contract using encoding/json. Tuples and growable sequences share the one
// JSON array form.
package jsonwire

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rawbytedev/arraywire"
)

// Serializer writes JSON arrays to w.
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
	if _, err := io.WriteString(s.w, "["); err != nil {
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
	if k.written > 0 {
		if _, err := io.WriteString(k.s.w, ","); err != nil {
			return err
		}
	}
	k.written++
	if m, ok := v.(arraywire.Serializable); ok {
		// element owns its encoding; it re-enters the serializer in place
		return m.Serialize(k.s)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = k.s.w.Write(b)
	return err
}

func (k *sink) End() error {
	if k.written != k.want {
		return fmt.Errorf("jsonwire: sequence declared %d elements, wrote %d", k.want, k.written)
	}
	_, err := io.WriteString(k.s.w, "]")
	return err
}
