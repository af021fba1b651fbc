package persist

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is any fixed-width primitive, including named types over one.
// int and uint are stored at their natural width on the host.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool
}

// SerializeScalar writes v as its raw fixed-width value, with no tag.
func SerializeScalar[T Scalar](ch Channel, v T) error {
	bufPtr := getBuf(8)
	buf := *bufPtr
	n := putScalar(buf, &v)
	err := writeFull(ch, buf[:n])
	putBuf(bufPtr)
	return err
}

// DeserializeScalar reads a fixed-width value into dst. dst is left unchanged
// if the read fails.
func DeserializeScalar[T Scalar](ch Channel, dst *T) error {
	if dst == nil {
		return fmt.Errorf("%w: nil %T", ErrUnsupportedType, dst)
	}
	n := int(unsafe.Sizeof(*dst))
	bufPtr := getBuf(n)
	buf := (*bufPtr)[:n]
	err := readFull(ch, buf)
	if err == nil {
		getScalar(buf, dst)
	}
	putBuf(bufPtr)
	return err
}

// putScalar encodes the bits of *v into b and returns its width.
func putScalar[T Scalar](b []byte, v *T) int {
	p := unsafe.Pointer(v)
	switch unsafe.Sizeof(*v) {
	case 1:
		b[0] = *(*uint8)(p)
		return 1
	case 2:
		Order.PutUint16(b, *(*uint16)(p))
		return 2
	case 4:
		Order.PutUint32(b, *(*uint32)(p))
		return 4
	default:
		Order.PutUint64(b, *(*uint64)(p))
		return 8
	}
}

func getScalar[T Scalar](b []byte, dst *T) {
	p := unsafe.Pointer(dst)
	switch len(b) {
	case 1:
		// Any non-zero byte is true; keep the bool representation valid.
		if reflect.TypeFor[T]().Kind() == reflect.Bool {
			*(*bool)(p) = b[0] != 0
			return
		}
		*(*uint8)(p) = b[0]
	case 2:
		*(*uint16)(p) = Order.Uint16(b)
	case 4:
		*(*uint32)(p) = Order.Uint32(b)
	default:
		*(*uint64)(p) = Order.Uint64(b)
	}
}
