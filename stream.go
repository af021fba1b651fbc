package persist

// Stream chains Serialize and Deserialize calls on one channel:
//
//	s := NewStream(store)
//	s.Save(d.ID).Save(d.Name)
//	s.Reset().Load(&d2.ID).Load(d2.Name)
//
// It tracks the first error that occurs. After an error, all subsequent
// calls become no-ops, so a chain can be checked once at the end.
type Stream struct {
	ch    Channel
	count int   // values processed since the last Reset
	err   error // first error encountered
}

// NewStream wraps ch. A nil channel latches ErrNilChannel.
func NewStream(ch Channel) *Stream {
	s := &Stream{ch: ch}
	if ch == nil {
		s.err = ErrNilChannel
	}
	return s
}

// Reset starts a new pass on the underlying channel and clears the count.
// A latched error is kept.
func (s *Stream) Reset() *Stream {
	if s.err != nil {
		return s
	}
	s.ch.Reset()
	s.count = 0
	return s
}

// Save serializes v.
func (s *Stream) Save(v any) *Stream {
	if s.err != nil {
		return s
	}
	s.setError(Serialize(s.ch, v))
	if s.err == nil {
		s.count++
	}
	return s
}

// Load deserializes into v.
func (s *Stream) Load(v any) *Stream {
	if s.err != nil {
		return s
	}
	s.setError(Deserialize(s.ch, v))
	if s.err == nil {
		s.count++
	}
	return s
}

func (s *Stream) Count() int { return s.count }
func (s *Stream) Err() error { return s.err }

// setError records the first non-nil error.
func (s *Stream) setError(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Result flushes the channel if it is a Flusher and returns the latched error.
func (s *Stream) Result() error {
	if s.err != nil {
		return s.err
	}
	if f, ok := s.ch.(Flusher); ok {
		s.setError(f.Flush())
	}
	return s.err
}
