package chash_test

import (
	"runtime"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/llxisdsh/pb"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/theflywheel/chash"
	"github.com/zhangyunhao116/skipmap"
)

const countCompare = 100_000

// Each comparison runs the same single-goroutine workload: store
// countCompare keys, load them all, then delete them all.

func BenchmarkCompare_chash(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m, err := chash.New[int, int]()
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < countCompare; i++ {
			if err := m.Insert(i, i); err != nil {
				b.Fatal(err)
			}
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			m.Remove(i)
		}
	}
}

func BenchmarkCompare_chashXXHash(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m, err := chash.NewWithHasher[int, int](chash.XXHash[int])
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < countCompare; i++ {
			if err := m.Insert(i, i); err != nil {
				b.Fatal(err)
			}
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			m.Remove(i)
		}
	}
}

func BenchmarkCompare_GoMap(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := make(map[int]int)
		for i := 0; i < countCompare; i++ {
			m[i] = i
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m[i]; !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			delete(m, i)
		}
	}
}

func BenchmarkCompare_pb_MapOf(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := pb.NewMapOf[int, int]()
		for i := 0; i < countCompare; i++ {
			m.Store(i, i)
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m.Load(i); !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			m.Delete(i)
		}
	}
}

func BenchmarkCompare_xsync_Map(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := xsync.NewMap[int, int]()
		for i := 0; i < countCompare; i++ {
			m.Store(i, i)
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m.Load(i); !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			m.Delete(i)
		}
	}
}

func BenchmarkCompare_haxmap(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := haxmap.New[int, int]()
		for i := 0; i < countCompare; i++ {
			m.Set(i, i)
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			m.Del(i)
		}
	}
}

func BenchmarkCompare_skipmap(b *testing.B) {
	b.ReportAllocs()
	runtime.GC()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := skipmap.New[int, int]()
		for i := 0; i < countCompare; i++ {
			m.Store(i, i)
		}
		for i := 0; i < countCompare; i++ {
			if _, ok := m.Load(i); !ok {
				b.Fatalf("key %d missing", i)
			}
		}
		for i := 0; i < countCompare; i++ {
			m.Delete(i)
		}
	}
}
