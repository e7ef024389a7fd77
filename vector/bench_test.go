package vector

import (
	"testing"

	"github.com/joshuapare/collections/alloc"
)

func BenchmarkPushBack(b *testing.B) {
	b.Run("heap", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			v := New[int]()
			for i := range 1024 {
				_ = v.PushBack(i)
			}
		}
	})
	b.Run("pooled", func(b *testing.B) {
		pool := alloc.NewPooled[int](nil, alloc.ConfigBalanced)
		b.ReportAllocs()
		for range b.N {
			v := New(WithAllocator[int](pool))
			for i := range 1024 {
				_ = v.PushBack(i)
			}
			v.Release()
		}
	})
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int]()
	_ = v.Reserve(b.N)
	b.ResetTimer()
	for i := range b.N {
		_, _ = v.Insert(v.Begin(), i)
	}
}
