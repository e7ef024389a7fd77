package list

import (
	"math/rand/v2"
	"testing"

	"github.com/joshuapare/collections/alloc"
)

func BenchmarkPushBack(b *testing.B) {
	b.Run("heap", func(b *testing.B) {
		l := New[int]()
		b.ReportAllocs()
		for i := range b.N {
			_ = l.PushBack(i)
		}
	})
	b.Run("pooled", func(b *testing.B) {
		l := New(WithAllocator[int](alloc.NewPooled[int](nil, alloc.ConfigNodes)))
		b.ReportAllocs()
		for i := range b.N {
			_ = l.PushBack(i)
			if l.Len() == 1024 {
				l.Clear()
			}
		}
	})
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewPCG(7, 7))
	vals := make([]int, 10_000)
	for i := range vals {
		vals[i] = rng.Int()
	}
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		l, _ := From(vals, Ordered[int]())
		b.StartTimer()
		l.Sort()
	}
}
