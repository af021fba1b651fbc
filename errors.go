package persist

import (
	"errors"
	"fmt"
)

var (
	// ErrNilChannel indicates that a nil Channel was passed to a pass helper or NewStream.
	ErrNilChannel = errors.New("persist: nil channel")

	// ErrNotReadable indicates a Read on a channel that only counts bytes.
	ErrNotReadable = errors.New("persist: channel is not readable")

	// ErrUnsupportedType indicates a value that has no fixed binary layout
	// and implements neither Serializer/Deserializer nor BoundedText.
	ErrUnsupportedType = errors.New("persist: unsupported type")

	// ErrSizeMismatch indicates that the capacity recorded for a bounded text
	// differs from the capacity of the destination.
	ErrSizeMismatch = errors.New("persist: size mismatch")

	// ErrTextOverflow indicates a bounded text whose length exceeds its capacity,
	// either on the value being saved or in the stream being loaded.
	ErrTextOverflow = errors.New("persist: text length exceeds capacity")

	// ErrTrailingData is returned by Unmarshal when bytes remain after the value.
	ErrTrailingData = errors.New("persist: trailing data found after decoding")

	// ErrTruncatedData indicates that fewer bytes were written than the profiled size.
	ErrTruncatedData = errors.New("persist: truncated data")
)

// SizeMismatchError reports the stored and expected capacities of a bounded
// text record that could not be loaded.
type SizeMismatchError struct {
	Stored   uint32
	Expected int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%v: stored capacity %d, destination capacity %d", ErrSizeMismatch, e.Stored, e.Expected)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }
