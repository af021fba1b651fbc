package persist

import (
	"fmt"
	"reflect"
)

// Serialize writes v to ch. The encoding is chosen by the value's type:
//   - Serializer: the type writes its own members, in declaration order.
//   - BoundedText: length, capacity and a fixed capacity+1 payload.
//   - scalars and pointers to scalars: the raw fixed-width value.
//   - any other fixed-size value encoding/binary accepts (structs, arrays,
//     named scalars).
//
// The same calls against a Profiler and a Store yield the same size.
// A nil pointer of any type is rejected with ErrUnsupportedType.
func Serialize(ch Channel, v any) error {
	if ch == nil {
		return ErrNilChannel
	}
	if isNilPointer(v) {
		return fmt.Errorf("%w: nil %T", ErrUnsupportedType, v)
	}
	switch x := v.(type) {
	case Serializer:
		return x.Serialize(ch)
	case BoundedText:
		return serializeText(ch, x)
	case bool:
		return SerializeScalar(ch, x)
	case int8:
		return SerializeScalar(ch, x)
	case uint8:
		return SerializeScalar(ch, x)
	case int16:
		return SerializeScalar(ch, x)
	case uint16:
		return SerializeScalar(ch, x)
	case int32:
		return SerializeScalar(ch, x)
	case uint32:
		return SerializeScalar(ch, x)
	case int64:
		return SerializeScalar(ch, x)
	case uint64:
		return SerializeScalar(ch, x)
	case int:
		return SerializeScalar(ch, x)
	case uint:
		return SerializeScalar(ch, x)
	case float32:
		return SerializeScalar(ch, x)
	case float64:
		return SerializeScalar(ch, x)
	case *bool:
		return SerializeScalar(ch, *x)
	case *int8:
		return SerializeScalar(ch, *x)
	case *uint8:
		return SerializeScalar(ch, *x)
	case *int16:
		return SerializeScalar(ch, *x)
	case *uint16:
		return SerializeScalar(ch, *x)
	case *int32:
		return SerializeScalar(ch, *x)
	case *uint32:
		return SerializeScalar(ch, *x)
	case *int64:
		return SerializeScalar(ch, *x)
	case *uint64:
		return SerializeScalar(ch, *x)
	case *int:
		return SerializeScalar(ch, *x)
	case *uint:
		return SerializeScalar(ch, *x)
	case *float32:
		return SerializeScalar(ch, *x)
	case *float64:
		return SerializeScalar(ch, *x)
	}
	return serializeFixed(ch, v)
}

// Deserialize reads into v, which must be a pointer, a Deserializer or a
// BoundedText. Values must be read in the order they were written; a
// different order is not detected.
func Deserialize(ch Channel, v any) error {
	if ch == nil {
		return ErrNilChannel
	}
	if isNilPointer(v) {
		return fmt.Errorf("%w: nil %T", ErrUnsupportedType, v)
	}
	switch x := v.(type) {
	case Deserializer:
		return x.Deserialize(ch)
	case BoundedText:
		return deserializeText(ch, x)
	case *bool:
		return DeserializeScalar(ch, x)
	case *int8:
		return DeserializeScalar(ch, x)
	case *uint8:
		return DeserializeScalar(ch, x)
	case *int16:
		return DeserializeScalar(ch, x)
	case *uint16:
		return DeserializeScalar(ch, x)
	case *int32:
		return DeserializeScalar(ch, x)
	case *uint32:
		return DeserializeScalar(ch, x)
	case *int64:
		return DeserializeScalar(ch, x)
	case *uint64:
		return DeserializeScalar(ch, x)
	case *int:
		return DeserializeScalar(ch, x)
	case *uint:
		return DeserializeScalar(ch, x)
	case *float32:
		return DeserializeScalar(ch, x)
	case *float64:
		return DeserializeScalar(ch, x)
	}
	return deserializeFixed(ch, v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
