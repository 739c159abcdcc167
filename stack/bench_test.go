package stack_test

import (
	"testing"

	"github.com/katalvlaran/strukt/stack"
)

// benchmarkPushPop is a helper that pushes and pops n elements per iteration.
func benchmarkPushPop(b *testing.B, n int) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		s := stack.New[int]()
		s.Grow(n)
		for j := 0; j < n; j++ {
			s.Push(j)
		}
		for j := 0; j < n; j++ {
			if _, ok := s.Pop(); !ok {
				b.Fatal("unexpected underflow")
			}
		}
	}
}

// BenchmarkStack_Small exercises 100-element push/pop cycles.
func BenchmarkStack_Small(b *testing.B) { benchmarkPushPop(b, 100) }

// BenchmarkStack_Medium exercises 10_000-element push/pop cycles.
func BenchmarkStack_Medium(b *testing.B) { benchmarkPushPop(b, 10_000) }
