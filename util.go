package persist

import (
	"encoding/binary"
	"io"
)

// Order is the byte order of every multi-byte field. It defaults to the
// host order so scalars are stored as their raw in-memory bytes.
var Order binary.ByteOrder = binary.NativeEndian

const BUFFER_SIZE = 4096

var empty [BUFFER_SIZE]byte

func Ptr[T any](v T) *T { return &v } // Ptr is a helper function to create a pointer to a value, making test setup cleaner.

// writeFull writes p and turns a silent short write into io.ErrShortWrite.
func writeFull(ch Channel, p []byte) error {
	n, err := ch.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// readFull fills p. A clean end of stream inside a record is reported as
// io.ErrUnexpectedEOF.
func readFull(ch Channel, p []byte) error {
	if _, err := io.ReadFull(ch, p); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// writeZeros writes n zero bytes, used as payload fill.
func writeZeros(ch Channel, n int) error {
	for n > 0 {
		chunk := min(n, BUFFER_SIZE)
		if err := writeFull(ch, empty[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// discard consumes n bytes from ch through a pooled scratch buffer.
// n is 64-bit so a corrupt 32-bit capacity plus its terminator slot never
// overflows int.
func discard(ch Channel, n int64) error {
	bufPtr := getBuf(CHUNK_SIZE)
	defer putBuf(bufPtr)
	buf := *bufPtr

	for n > 0 {
		chunk := int(min(n, int64(len(buf))))
		if err := readFull(ch, buf[:chunk]); err != nil {
			return err
		}
		n -= int64(chunk)
	}
	return nil
}
