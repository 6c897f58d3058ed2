// Package arraywire encodes and decodes homogeneous fixed-length arrays
// through pluggable wire serializers. An array is written as an ordered
// sequence of exactly N element encodings; no extra length prefix or marker
// is added beyond whatever the wire format emits for sequences, so the
// output is indistinguishable from a sequence written by hand.
//
// Three shapes serialize: a fixed array [N]T, a fixed array of fixed arrays
// [M][N]T, and a slice of fixed arrays [][N]T. Only the flat shape decodes.
package arraywire

import (
	"errors"
	"reflect"

	"github.com/rawbytedev/arraywire/internal/common"
)

var (
	ErrUnsupportedShape = errors.New("expected a fixed array, array of arrays, or slice of arrays")
	ErrNotArrayPtr      = errors.New("expected non-nil pointer to a fixed array")
)

// Serialize encodes data, which must be one of the three supported shapes or
// a pointer to one. The caller never picks an implementation: the shape is
// detected here and routed to the flat tuple codec or the wrap-and-write
// path for nested shapes.
func Serialize(s Serializer, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return ErrUnsupportedShape
	}
	switch common.ShapeOf(v.Type()) {
	case common.Flat:
		return encodeTuple(s, v)
	case common.Nested:
		sink, err := s.SerializeTuple(v.Len())
		if err != nil {
			return err
		}
		return encodeWrapped(sink, v)
	case common.SliceOfFlat:
		sink, err := s.SerializeSeq(v.Len())
		if err != nil {
			return err
		}
		return encodeWrapped(sink, v)
	}
	return ErrUnsupportedShape
}

// encodeTuple writes a flat [N]T as a fixed-length sequence, one element at
// a time, in declaration order. The first element failure aborts and
// propagates unchanged; the sink enforces "declare N, write exactly N".
func encodeTuple(s Serializer, arr reflect.Value) error {
	sink, err := s.SerializeTuple(arr.Len())
	if err != nil {
		return err
	}
	for i := 0; i < arr.Len(); i++ {
		if err := sink.Element(arr.Index(i).Interface()); err != nil {
			return err
		}
	}
	return sink.End()
}

// encodeWrapped writes each inner array of an outer array or slice as a
// single sequence element. The wrap makes the generic sink treat the inner
// array as one opaque element; its Serializable hook re-enters Serialize,
// which expands it into N sub-elements on the wire.
func encodeWrapped(sink SeqSink, outer reflect.Value) error {
	for i := 0; i < outer.Len(); i++ {
		if err := sink.Element(wrapArray(outer.Index(i))); err != nil {
			return err
		}
	}
	return sink.End()
}
