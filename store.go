package persist

import "io"

// Erased is the fill byte of a fresh store, as read from an erased flash page.
const Erased byte = 0xFF

// Store is a Channel over a fixed-capacity byte slice. The same store is
// used for a save pass and a later load pass by calling Reset in between.
// It never grows: a write past the end writes as much as it can and returns
// io.ErrShortWrite.
type Store struct {
	B     []byte // backing buffer
	N     int    // cursor
	flush func(p []byte) error
}

var (
	_ Channel = (*Store)(nil)
	_ Flusher = (*Store)(nil)
)

// NewStore creates a Store over b using its full capacity.
func NewStore(b []byte) *Store {
	return &Store{B: b[:cap(b)]}
}

// NewStoreSize allocates a Store of n bytes filled with Erased.
func NewStoreSize(n int) *Store {
	b := make([]byte, n)
	for i := range b {
		b[i] = Erased
	}
	return &Store{B: b}
}

// WithFlush installs a hook run by Flush with the bytes written in the
// current pass, and returns the store for chaining.
func (s *Store) WithFlush(fn func(p []byte) error) *Store {
	s.flush = fn
	return s
}

// Reset moves the cursor back to the start of the buffer.
func (s *Store) Reset() { s.N = 0 }

// Write implements the io.Writer interface.
func (s *Store) Write(p []byte) (int, error) {
	if s.N >= len(s.B) && len(p) > 0 {
		return 0, io.ErrShortWrite
	}
	n := copy(s.B[s.N:], p)
	s.N += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Read implements the io.Reader interface. It returns io.EOF when the
// cursor is at the end and io.ErrUnexpectedEOF on a partial read.
func (s *Store) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.N >= len(s.B) {
		return 0, io.EOF
	}
	n := copy(p, s.B[s.N:])
	s.N += n
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

// Flush runs the hook installed by WithFlush, if any.
func (s *Store) Flush() error {
	if s.flush == nil {
		return nil
	}
	return s.flush(s.B[:s.N])
}

// Len returns the cursor position.
func (s *Store) Len() int { return s.N }

// Size returns the capacity of the underlying byte slice.
func (s *Store) Size() int { return len(s.B) }

// Available returns the number of bytes left after the cursor.
func (s *Store) Available() int { return len(s.B) - s.N }

// Bytes returns a slice view of the data before the cursor.
func (s *Store) Bytes() []byte { return s.B[:s.N] }
