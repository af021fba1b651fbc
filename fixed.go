package persist

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a concurrent map makes it safe across goroutines even
// though a single channel is not.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// fixedSize returns the encoded size of v, or -1 if v has no fixed layout.
// Pointers are sized by their element. Slices are rejected: their size
// depends on their length and the stream records none.
func fixedSize(v any) int {
	t := reflect.TypeOf(v)
	if t == nil {
		return -1
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Slice {
		return -1
	}

	if size, ok := sizeCache.Load(t); ok {
		return size
	}

	// Size the zero value so a nil pointer never caches a bogus result.
	size := binary.Size(reflect.New(t).Interface())
	sizeCache.Store(t, size)
	return size
}

// serializeFixed writes any value composed of fixed-size fields (structs,
// arrays, named scalars) using encoding/binary in Order.
//
// Constraint: the value MUST NOT contain slices, maps, strings or int/uint
// fields, as this will cause `binary.Size` to fail.
func serializeFixed(ch Channel, v any) error {
	size := fixedSize(v)
	if size < 0 {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	bufPtr := getBuf(size)
	defer putBuf(bufPtr)
	buf := (*bufPtr)[:size]

	if _, err := binary.Encode(buf, Order, v); err != nil {
		return fmt.Errorf("%w: %T: %v", ErrUnsupportedType, v, err)
	}
	return writeFull(ch, buf)
}

// deserializeFixed is the mirror of serializeFixed. v must be a pointer.
// The record is read in full before v is touched.
func deserializeFixed(ch Channel, v any) error {
	if t := reflect.TypeOf(v); t == nil || t.Kind() != reflect.Pointer {
		return fmt.Errorf("%w: %T is not a pointer", ErrUnsupportedType, v)
	}
	size := fixedSize(v)
	if size < 0 {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	bufPtr := getBuf(size)
	defer putBuf(bufPtr)
	buf := (*bufPtr)[:size]

	if err := readFull(ch, buf); err != nil {
		return err
	}
	if _, err := binary.Decode(buf, Order, v); err != nil {
		return fmt.Errorf("%w: %T: %v", ErrUnsupportedType, v, err)
	}
	return nil
}
