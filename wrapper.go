package arraywire

import "reflect"

// arrayWrap presents one inner fixed array as a single sequence element.
// It holds only a view of the array, never copies or mutates it, and is
// discarded when the enclosing encode returns.
type arrayWrap struct {
	inner reflect.Value
}

func wrapArray(inner reflect.Value) arrayWrap {
	return arrayWrap{inner: inner}
}

// Serialize forwards the wrapped array back through the shape dispatch: a
// flat inner array lands in the tuple codec, deeper nesting recurses.
func (w arrayWrap) Serialize(s Serializer) error {
	return Serialize(s, w.inner.Interface())
}
