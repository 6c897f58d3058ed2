package arraywire

import "reflect"

// memwire: an in-memory Serializer/Deserializer pair so the core can be
// tested without a real wire format. Sequences are recorded as trees of
// memSeq values.

type memSeq struct {
	fixed bool
	n     int
	elems []any
}

type memSerializer struct {
	root *memSeq
}

func (m *memSerializer) SerializeTuple(n int) (SeqSink, error) {
	m.root = &memSeq{fixed: true, n: n}
	return &memSink{seq: m.root}, nil
}

func (m *memSerializer) SerializeSeq(n int) (SeqSink, error) {
	m.root = &memSeq{n: n}
	return &memSink{seq: m.root}, nil
}

type memSink struct {
	seq   *memSeq
	ended bool
}

func (k *memSink) Element(v any) error {
	if sv, ok := v.(Serializable); ok {
		sub := &memSerializer{}
		if err := sv.Serialize(sub); err != nil {
			return err
		}
		k.seq.elems = append(k.seq.elems, sub.root)
		return nil
	}
	k.seq.elems = append(k.seq.elems, v)
	return nil
}

func (k *memSink) End() error {
	k.ended = true
	return nil
}

type memDeserializer struct {
	seq *memSeq
}

func (d *memDeserializer) DeserializeTuple(_ int) (SeqSource, error) {
	return &memSource{elems: d.seq.elems}, nil
}

type memSource struct {
	elems []any
	pos   int
}

func (s *memSource) Next(v any) (bool, error) {
	if s.pos == len(s.elems) {
		return false, nil
	}
	reflect.ValueOf(v).Elem().Set(reflect.ValueOf(s.elems[s.pos]))
	s.pos++
	return true, nil
}

// scriptSource yields a fixed list of values and can be told to fail at a
// given read.
type scriptSource struct {
	vals  []any
	errAt int // read index at which Next fails; -1 disables
	err   error
	pos   int
}

func (s *scriptSource) Next(v any) (bool, error) {
	if s.errAt >= 0 && s.pos == s.errAt {
		return false, s.err
	}
	if s.pos == len(s.vals) {
		return false, nil
	}
	reflect.ValueOf(v).Elem().Set(reflect.ValueOf(s.vals[s.pos]))
	s.pos++
	return true, nil
}

type scriptDeserializer struct {
	src SeqSource
	err error
}

func (d *scriptDeserializer) DeserializeTuple(_ int) (SeqSource, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.src, nil
}
