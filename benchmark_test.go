package persist

import (
	"encoding/binary"
	"testing"
)

type BenchmarkPayload struct {
	ID      uint32
	Val1    uint64
	Val2    uint64
	Val3    uint64
	IsAlive bool
	Padding [3]byte
}

func BenchmarkSerializeScalar(b *testing.B) {
	store := NewStoreSize(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Reset()
		_ = SerializeScalar(store, uint64(i))
	}
}

func BenchmarkSerializeText(b *testing.B) {
	store := NewStoreSize(TextSize(32))
	text := MakeText(32, "benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Reset()
		_ = Serialize(store, text)
	}
}

func BenchmarkDeserializeText(b *testing.B) {
	store := NewStoreSize(TextSize(32))
	_ = Save(store, MakeText(32, "benchmark"))
	text := NewText(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Reset()
		_ = Deserialize(store, text)
	}
}

func BenchmarkProfileRecord(b *testing.B) {
	r := newRecord(99, "99")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SizeOf(r)
	}
}

func BenchmarkSerializeFixed(b *testing.B) {
	payload := &BenchmarkPayload{ID: 1, Val1: 100}
	store := NewStoreSize(binary.Size(payload))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Reset()
		_ = Serialize(store, payload)
	}
}

// Baseline comparison using only binary.Write directly, to see overhead of the dispatch
func BenchmarkStandardBinaryWrite(b *testing.B) {
	payload := BenchmarkPayload{ID: 1, Val1: 100}
	store := NewStoreSize(binary.Size(payload))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Reset()
		_ = binary.Write(store, Order, &payload)
	}
}
