package stack

// Stack is a generic LIFO container over a growable slice.
// The top of the stack is the end of the slice.
type Stack[T any] struct {
	items []T
}

// New returns an empty Stack ready for use.
// Complexity: O(1).
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recently pushed element.
// Returns (zero, false) if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := len(s.items) - 1
	v := s.items[top]
	// Clear the vacated slot so the element can be collected.
	s.items[top] = zero
	s.items = s.items[:top]

	return v, true
}

// Peek returns the element Pop would return next, without removing it.
// Returns (zero, false) if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len reports the number of elements currently on the stack.
// Complexity: O(1).
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
// Complexity: O(1).
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Grow pre-allocates capacity for at least n additional pushes.
// It never shrinks the stack and is a no-op for n <= 0.
// Complexity: O(Len) when reallocation occurs.
func (s *Stack[T]) Grow(n int) {
	if n <= 0 || cap(s.items)-len(s.items) >= n {
		return
	}
	grown := make([]T, len(s.items), len(s.items)+n)
	copy(grown, s.items)
	s.items = grown
}
