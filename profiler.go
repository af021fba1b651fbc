package persist

import "sync"

// Profiler is a Channel that stores nothing and only counts the bytes a save
// pass would produce. Run the same Serialize calls against a Profiler and a
// Store and both report the same size.
type Profiler struct {
	n int
}

var _ Channel = (*Profiler)(nil)

// Reset zeroes the count.
func (p *Profiler) Reset() { p.n = 0 }

// Write adds len(b) to the count.
func (p *Profiler) Write(b []byte) (int, error) {
	p.n += len(b)
	return len(b), nil
}

// Read always fails; a profiler never holds data.
func (p *Profiler) Read([]byte) (int, error) { return 0, ErrNotReadable }

// Size returns the number of bytes counted since the last Reset.
func (p *Profiler) Size() int { return p.n }

// profilerPool keeps SizeOf from allocating a Profiler that escapes
// through the Channel interface.
var profilerPool = sync.Pool{
	New: func() interface{} { return new(Profiler) },
}

// SizeOf returns the exact number of bytes v occupies when serialized.
func SizeOf(v any) (int, error) {
	p := profilerPool.Get().(*Profiler)
	defer profilerPool.Put(p)
	p.Reset()
	if err := Serialize(p, v); err != nil {
		return 0, err
	}
	return p.Size(), nil
}

// SizeOfAll returns the serialized size of vs written in order.
func SizeOfAll(vs ...any) (int, error) {
	p := profilerPool.Get().(*Profiler)
	defer profilerPool.Put(p)
	p.Reset()
	if err := SerializeAll(p, vs...); err != nil {
		return 0, err
	}
	return p.Size(), nil
}

// TextSize returns the record size of a bounded text of the given capacity:
// length and capacity headers plus capacity+1 payload bytes.
func TextSize(capacity int) int {
	return textHeaderSize + capacity + 1
}
