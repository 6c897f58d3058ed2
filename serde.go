package arraywire

// Serializer opens ordered sequences on an output stream. Implementations
// live under pkg/, one per wire format; the core never touches the wire
// bytes itself.
type Serializer interface {
	// SerializeTuple opens a fixed-length sequence. Exactly n elements must
	// be written before End.
	SerializeTuple(n int) (SeqSink, error)
	// SerializeSeq opens a growable sequence currently holding n elements.
	SerializeSeq(n int) (SeqSink, error)
}

// SeqSink is the ordered-slot writer returned by a Serializer.
//
// Element must check whether v implements Serializable and, if so, hand
// control back to that value instead of applying the sink's native element
// encoding. Nested array encoding relies on this re-entry.
type SeqSink interface {
	Element(v any) error
	End() error
}

// Deserializer opens ordered sequences on an input stream.
type Deserializer interface {
	// DeserializeTuple opens a sequence expected to hold n elements. Sources
	// do not enforce n; callers discover the real length by counting.
	DeserializeTuple(n int) (SeqSource, error)
}

// SeqSource lazily yields sequence elements.
type SeqSource interface {
	// Next decodes the next element into v, a non-nil pointer. It returns
	// false with a nil error once the sequence is exhausted.
	Next(v any) (bool, error)
}

// Serializable is implemented by values that carry their own encoding.
// Sinks defer to it; the nested-array wrapper uses it to splice a whole
// fixed array in as a single sequence element.
type Serializable interface {
	Serialize(s Serializer) error
}
