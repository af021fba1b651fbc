package persist

import "sync"

const CHUNK_SIZE = 32 * 1024

// bufPool holds scratch buffers for scalars, text records and fixed-size
// values. Codec calls write through a Channel interface, so a stack array
// would escape on every call; a pooled buffer keeps them allocation-free.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, CHUNK_SIZE)
		return &b
	},
}

// getBuf returns a buffer of at least n bytes. Callers slice it to n and
// hand it back with putBuf. Records larger than CHUNK_SIZE get a fresh
// allocation that is never pooled.
func getBuf(n int) *[]byte {
	if n > CHUNK_SIZE {
		b := make([]byte, n)
		return &b
	}
	return bufPool.Get().(*[]byte)
}

func putBuf(bufPtr *[]byte) {
	if len(*bufPtr) == CHUNK_SIZE {
		bufPool.Put(bufPtr)
	}
}
