package persist

import (
	"bytes"
	"fmt"
	"math"
)

// textHeaderSize is the length and capacity fields of a text record.
const textHeaderSize = 4 + 4

// Text is a bounded string with a capacity fixed at construction.
// Its storage always holds capacity+1 bytes; the last slot is a reserved
// terminator that is never part of the content.
type Text struct {
	buf []byte
	n   int
}

var _ BoundedText = (*Text)(nil)

// NewText creates an empty Text that can hold up to capacity bytes.
func NewText(capacity int) *Text {
	if capacity < 0 {
		panic("persist: NewText called with a negative capacity")
	}
	return &Text{buf: make([]byte, capacity+1)}
}

// MakeText creates a Text of the given capacity holding s, truncated to fit.
func MakeText(capacity int, s string) *Text {
	t := NewText(capacity)
	t.SetString(s)
	return t
}

func (t *Text) Len() int { return t.n }

// Cap returns the maximum content length.
func (t *Text) Cap() int {
	if len(t.buf) == 0 {
		return 0
	}
	return len(t.buf) - 1
}

// Bytes returns the content. The slice aliases the Text storage.
func (t *Text) Bytes() []byte { return t.buf[:t.n] }

// SetBytes replaces the content with p, truncated to Cap.
func (t *Text) SetBytes(p []byte) {
	if t.buf == nil {
		t.buf = make([]byte, 1)
	}
	t.n = copy(t.buf[:t.Cap()], p)
	clear(t.buf[t.n:])
}

// SetString replaces the content with s and reports whether s was truncated.
func (t *Text) SetString(s string) (truncated bool) {
	t.SetBytes([]byte(s))
	return t.n < len(s)
}

func (t *Text) String() string { return string(t.Bytes()) }

// Equal reports whether t and o hold the same content. Capacities may differ.
func (t *Text) Equal(o *Text) bool { return bytes.Equal(t.Bytes(), o.Bytes()) }

// serializeText writes length, capacity and the full capacity+1 payload.
// The record size depends only on the capacity.
func serializeText(ch Channel, t BoundedText) error {
	length, capacity, content := t.Len(), t.Cap(), t.Bytes()
	if length > capacity || len(content) < length {
		return fmt.Errorf("%w: length %d, capacity %d, content %d bytes", ErrTextOverflow, length, capacity, len(content))
	}
	if uint64(capacity) > math.MaxUint32 {
		return fmt.Errorf("%w: capacity %d does not fit the record header", ErrUnsupportedType, capacity)
	}

	bufPtr := getBuf(textHeaderSize)
	header := (*bufPtr)[:textHeaderSize]
	Order.PutUint32(header[0:4], uint32(length))
	Order.PutUint32(header[4:8], uint32(capacity))
	err := writeFull(ch, header)
	putBuf(bufPtr)
	if err != nil {
		return err
	}
	if err := writeFull(ch, content[:length]); err != nil {
		return err
	}
	return writeZeros(ch, capacity+1-length)
}

// deserializeText reads a record written by serializeText, validates it and
// only then commits it to t. On any failure t is left unchanged. After a
// capacity mismatch the whole record has been consumed.
//
// Header fields stay uint32 until validated: on a 32-bit int an erased
// 0xFF page would otherwise read back as a negative length.
func deserializeText(ch Channel, t BoundedText) error {
	bufPtr := getBuf(textHeaderSize)
	defer putBuf(bufPtr)
	header := (*bufPtr)[:textHeaderSize]
	if err := readFull(ch, header); err != nil {
		return err
	}
	length := Order.Uint32(header[0:4])
	stored := Order.Uint32(header[4:8])

	capacity := t.Cap()
	if uint64(stored) != uint64(capacity) {
		mismatch := &SizeMismatchError{Stored: stored, Expected: capacity}
		if err := discard(ch, int64(stored)+1); err != nil {
			return fmt.Errorf("%w (payload not consumed: %w)", mismatch, err)
		}
		return mismatch
	}

	// stored equals an int capacity from here on, so int conversions are safe.
	width := capacity + 1
	var payload []byte
	if textHeaderSize+width <= len(*bufPtr) {
		payload = (*bufPtr)[textHeaderSize : textHeaderSize+width]
	} else {
		payloadPtr := getBuf(width)
		defer putBuf(payloadPtr)
		payload = (*payloadPtr)[:width]
	}
	if err := readFull(ch, payload); err != nil {
		return err
	}
	if length > stored {
		return fmt.Errorf("%w: stored length %d, capacity %d", ErrTextOverflow, length, stored)
	}

	t.SetBytes(payload[:int(length)])
	return nil
}
