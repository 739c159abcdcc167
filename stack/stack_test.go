package stack_test

import (
	"testing"

	"github.com/katalvlaran/strukt/stack"
)

// TestStack_LIFO verifies that pops yield pushed values in reverse order.
func TestStack_LIFO(t *testing.T) {
	s := stack.New[int]()
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop: unexpected underflow, want %d", want)
		}
		if got != want {
			t.Errorf("Pop = %d; want %d", got, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on drained stack: want ok=false")
	}
}

// TestStack_EmptyPop verifies that a fresh stack reports underflow, not a panic.
func TestStack_EmptyPop(t *testing.T) {
	s := stack.New[string]()
	if v, ok := s.Pop(); ok {
		t.Errorf("Pop on empty = (%q, true); want ok=false", v)
	}
	if v, ok := s.Peek(); ok {
		t.Errorf("Peek on empty = (%q, true); want ok=false", v)
	}
	if !s.IsEmpty() {
		t.Error("IsEmpty = false on fresh stack")
	}
}

// TestStack_PeekDoesNotMutate verifies that repeated peeks observe the same
// top element and leave the subsequent pop unchanged.
func TestStack_PeekDoesNotMutate(t *testing.T) {
	s := stack.New[int]()
	s.Push(7)
	s.Push(9)
	for i := 0; i < 3; i++ {
		if v, ok := s.Peek(); !ok || v != 9 {
			t.Fatalf("Peek #%d = (%d, %t); want (9, true)", i, v, ok)
		}
	}
	if n := s.Len(); n != 2 {
		t.Errorf("Len after peeks = %d; want 2", n)
	}
	if v, _ := s.Pop(); v != 9 {
		t.Errorf("Pop after peeks = %d; want 9", v)
	}
}

// TestStack_Len tracks length across interleaved pushes and pops.
func TestStack_Len(t *testing.T) {
	s := stack.New[int]()
	if s.Len() != 0 {
		t.Fatalf("Len of fresh stack = %d; want 0", s.Len())
	}
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	if s.Len() != 10 {
		t.Errorf("Len after 10 pushes = %d; want 10", s.Len())
	}
	s.Pop()
	s.Pop()
	if s.Len() != 8 {
		t.Errorf("Len after 2 pops = %d; want 8", s.Len())
	}
}

// TestStack_Grow confirms Grow preserves contents and order.
func TestStack_Grow(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Grow(1024)
	s.Grow(-1) // no-op
	for _, want := range []int{2, 1} {
		if got, _ := s.Pop(); got != want {
			t.Errorf("Pop after Grow = %d; want %d", got, want)
		}
	}
}
