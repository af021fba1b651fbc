package persist

import "io"

// Channel is a sequential byte sink and source with a pass origin.
// A save or load pass starts with Reset and then moves the cursor forward
// only; there is no seek.
//
// A Channel is owned by a single pass at a time and is not safe for
// concurrent use.
type Channel interface {
	// Write appends p at the cursor and advances it by len(p).
	io.Writer
	// Read fills p from the cursor and advances it.
	io.Reader
	// Reset returns the cursor to the pass origin.
	Reset()
}

// Flusher is implemented by channels that need a hook after a save pass,
// e.g. to push the buffer to real storage.
type Flusher interface {
	Flush() error
}

// Serializer is implemented by composite types that write themselves
// member by member with Serialize.
type Serializer interface {
	Serialize(ch Channel) error
}

// Deserializer is the load side of Serializer. Members must be read in the
// same order they were written.
type Deserializer interface {
	Deserialize(ch Channel) error
}

// Persistent is a type that can both save and restore itself.
type Persistent interface {
	Serializer
	Deserializer
}

// BoundedText is a character sequence with a fixed maximum capacity.
type BoundedText interface {
	// Len returns the current content length.
	Len() int
	// Cap returns the maximum content length.
	Cap() int
	// Bytes returns the current content; it holds at least Len bytes.
	Bytes() []byte
	// SetBytes overwrites content and length. len(p) never exceeds Cap.
	// p is only valid for the duration of the call: implementations must
	// copy it and must not retain it.
	SetBytes(p []byte)
}
