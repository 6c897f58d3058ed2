package arraywire

import (
	"fmt"
	"reflect"

	"github.com/rawbytedev/arraywire/internal/common"
)

// LengthMismatchError reports a sequence whose element count does not match
// the target array length. Got is the number of elements actually filled
// when the mismatch was detected: the real count for short input, the array
// length for long input.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("invalid length %d, expected an array of size %d", e.Got, e.Want)
}

// Deserialize reads a fixed-length sequence from d into out, which must be
// a non-nil *[N]T. Elements are staged in a scratch slice and copied into
// out only once all N have arrived, so on any failure out is left exactly
// as it was and no half-built array escapes.
//
// Per step the source yields one of four outcomes: a value with room left
// (stage it), exhaustion with all N staged (done), its own decode error
// (propagated unchanged, nothing further read), or a length mismatch. Long
// input is detected the moment the (N+1)-th element appears, not after
// draining the source.
//
// Only the flat shape decodes; nested shapes are encode-only.
func Deserialize(d Deserializer, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Array {
		return ErrNotArrayPtr
	}
	arr := v.Elem()
	if common.ShapeOf(arr.Type()) != common.Flat {
		return ErrUnsupportedShape
	}
	n := arr.Len()
	elem := arr.Type().Elem()

	src, err := d.DeserializeTuple(n)
	if err != nil {
		return err
	}

	staged := reflect.MakeSlice(reflect.SliceOf(elem), 0, n)
	for {
		ev := reflect.New(elem)
		more, err := src.Next(ev.Interface())
		if err != nil {
			return err
		}
		if !more {
			if staged.Len() == n {
				break
			}
			return &LengthMismatchError{Want: n, Got: staged.Len()}
		}
		if staged.Len() == n {
			return &LengthMismatchError{Want: n, Got: n}
		}
		staged = reflect.Append(staged, ev.Elem())
	}
	reflect.Copy(arr, staged)
	return nil
}
