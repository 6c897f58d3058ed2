package common

import "reflect"

// Shape classifies the array forms the codec accepts.
type Shape int

const (
	Invalid     Shape = iota
	Flat              // [N]T where T is not itself an array
	Nested            // [M][N]T
	SliceOfFlat       // [][N]T
)

// ShapeOf classifies t. Anything that is not a fixed array, an array of
// arrays, or a slice of arrays is Invalid.
func ShapeOf(t reflect.Type) Shape {
	switch t.Kind() {
	case reflect.Array:
		if t.Elem().Kind() == reflect.Array {
			return Nested
		}
		return Flat
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Array {
			return SliceOfFlat
		}
	}
	return Invalid
}
