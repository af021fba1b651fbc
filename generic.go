package persist

import "fmt"

// Save runs a complete save pass: it resets ch, serializes v and, if ch is a
// Flusher, flushes it.
func Save(ch Channel, v any) error {
	if ch == nil {
		return ErrNilChannel
	}
	ch.Reset()
	if err := Serialize(ch, v); err != nil {
		return err
	}
	if f, ok := ch.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Load runs a complete load pass: it resets ch and deserializes into v.
func Load(ch Channel, v any) error {
	if ch == nil {
		return ErrNilChannel
	}
	ch.Reset()
	return Deserialize(ch, v)
}

// Marshal returns the serialized form of v in a buffer sized exactly by a
// profiling pass.
func Marshal(v any) ([]byte, error) {
	expectedSize, err := SizeOf(v)
	if err != nil {
		return nil, err
	}
	s := NewStore(make([]byte, expectedSize))
	if err := Serialize(s, v); err != nil {
		return nil, err
	}
	if s.Len() < expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, but wrote %d", ErrTruncatedData, expectedSize, s.Len())
	}
	return s.Bytes(), nil
}

// Unmarshal restores v from data and rejects any bytes left over, which
// would mean the shape used to load differs from the one used to save.
func Unmarshal(data []byte, v any) error {
	s := NewStore(data[:len(data):len(data)])
	if err := Deserialize(s, v); err != nil {
		return err
	}
	if s.Available() > 0 {
		return fmt.Errorf("%w: %d bytes left after decoding", ErrTrailingData, s.Available())
	}
	return nil
}
