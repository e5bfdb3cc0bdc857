package linkedhash

import "testing"

// bench is the table-driven benchmark shape the teacher library uses:
// a setup step that primes the container, then a per-iteration step
// that is timed. The teacher ran perG in parallel across goroutines;
// this module has no concurrent-access story (it is a Non-goal), so
// perG here just runs b.N times in the benchmark's own goroutine.
type bench struct {
	setup func(b *testing.B, s *Set)
	perG  func(b *testing.B, i int, s *Set)
}

const initCap = 1 << 10 // Large enough that benchmarks rarely trigger a rehash mid-run.

func benchSet(b *testing.B, bm bench) {
	s := NewSetCapacity(initCap)
	if bm.setup != nil {
		bm.setup(b, s)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bm.perG(b, i, s)
	}
}

func BenchmarkContainsMostlyHits(b *testing.B) {
	const hits, misses = 1023, 1

	benchSet(b, bench{
		setup: func(_ *testing.B, s *Set) {
			for i := 0; i < hits; i++ {
				s.MustAdd(NewInt64(int64(i)))
			}
		},
		perG: func(_ *testing.B, i int, s *Set) {
			s.Contains(NewInt64(int64(i % (hits + misses))))
		},
	})
}

func BenchmarkContainsMostlyMisses(b *testing.B) {
	const hits, misses = 1, 1023

	benchSet(b, bench{
		setup: func(_ *testing.B, s *Set) {
			for i := 0; i < hits; i++ {
				s.MustAdd(NewInt64(int64(i)))
			}
		},
		perG: func(_ *testing.B, i int, s *Set) {
			s.Contains(NewInt64(int64(i % (hits + misses))))
		},
	})
}

func BenchmarkAddUnique(b *testing.B) {
	benchSet(b, bench{
		perG: func(_ *testing.B, i int, s *Set) {
			s.Add(NewInt64(int64(i)))
		},
	})
}

func BenchmarkAddRemoveCollision(b *testing.B) {
	benchSet(b, bench{
		perG: func(_ *testing.B, i int, s *Set) {
			e := NewInt64(1)
			if s.Add(e) {
				s.Remove(e)
			}
		},
	})
}

func BenchmarkIterate(b *testing.B) {
	const size = 1 << 9

	benchSet(b, bench{
		setup: func(_ *testing.B, s *Set) {
			for i := 0; i < size; i++ {
				s.MustAdd(NewInt64(int64(i)))
			}
		},
		perG: func(_ *testing.B, _ int, s *Set) {
			it := s.Iterator()
			for {
				if _, ok := it.Next(); !ok {
					break
				}
			}
		},
	})
}

func BenchmarkMultiSetFindAll(b *testing.B) {
	const groups, perGroup = 32, 8

	m := NewMultiSetCapacity(groups * perGroup)
	for g := 0; g < groups; g++ {
		for j := 0; j < perGroup; j++ {
			m.MustAdd(NewInt64(int64(g)))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.FindAll(NewInt64(int64(i % groups)))
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}
