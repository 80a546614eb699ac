package ssv

import (
	"strconv"
	"testing"
)

func BenchmarkAppendInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v Default
		v.Append("alpha")
		v.Append("beta")
		v.Append("gamma")
		v.Append("delta")
	}
}

func BenchmarkAppendHeap(b *testing.B) {
	strs := make([]string, 100)
	for i := range strs {
		strs[i] = strconv.Itoa(i * 1000)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := NewDefault()
		for _, s := range strs {
			v.Append(s)
		}
	}
}

func BenchmarkGetInline(b *testing.B) {
	v := From[[120]byte, uint64]("alpha", "beta", "gamma", "delta")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Get(i & 3)
	}
}

func BenchmarkGetHeap(b *testing.B) {
	v := NewDefault()
	for i := range 256 {
		v.Append(strconv.Itoa(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Get(i & 255)
	}
}

func BenchmarkClone(b *testing.B) {
	v := NewDefault()
	for i := range 100 {
		v.Append(strconv.Itoa(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Clone()
	}
}

func BenchmarkHash(b *testing.B) {
	v := NewDefault()
	for i := range 100 {
		v.Append(strconv.Itoa(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Hash()
	}
}
