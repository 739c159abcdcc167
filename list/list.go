package list

// none marks the absence of a successor (or of a head).
const none int32 = -1

// node is one arena slot: a value plus the index of its successor.
type node[T any] struct {
	value T
	next  int32
}

// List is a singly linked list whose nodes live in an arena and reference
// each other by index. The head index is the entry point of the chain;
// every live node's next index is either none or another live slot, so
// following next from head always terminates.
type List[T any] struct {
	nodes []node[T]
	free  []int32
	head  int32
}

// New returns an empty List ready for use.
// Complexity: O(1).
func New[T any]() *List[T] {
	return &List[T]{head: none}
}

// alloc takes a slot from the free-list, or extends the arena, and fills it.
func (l *List[T]) alloc(v T, next int32) int32 {
	if n := len(l.free); n > 0 {
		id := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[id] = node[T]{value: v, next: next}

		return id
	}
	l.nodes = append(l.nodes, node[T]{value: v, next: next})

	return int32(len(l.nodes) - 1)
}

// PushFront inserts v at the head of the list. The new node links to the
// previous head, which keeps its whole chain intact.
// Complexity: O(1) amortized.
func (l *List[T]) PushFront(v T) {
	l.head = l.alloc(v, l.head)
}

// PopFront detaches the head node and returns its value, promoting the
// successor to head. The vacated slot is cleared and returned to the
// free-list, so nothing leaks and no index dangles.
// Returns (zero, false) if the list is empty.
// Complexity: O(1).
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.head == none {
		return zero, false
	}
	id := l.head
	detached := l.nodes[id]
	l.head = detached.next
	l.nodes[id] = node[T]{next: none}
	l.free = append(l.free, id)

	return detached.value, true
}

// Front returns the head value without removing it.
// Returns (zero, false) if the list is empty.
// Complexity: O(1).
func (l *List[T]) Front() (T, bool) {
	var zero T
	if l.head == none {
		return zero, false
	}

	return l.nodes[l.head].value, true
}

// Len counts the nodes by walking the chain from head to termination.
// It is deliberately a traversal count, free of side effects and safe to
// call any number of times.
// Complexity: O(n).
func (l *List[T]) Len() int {
	n := 0
	for id := l.head; id != none; id = l.nodes[id].next {
		n++
	}

	return n
}

// IsEmpty reports whether the list has no head.
// Complexity: O(1).
func (l *List[T]) IsEmpty() bool {
	return l.head == none
}

// Each visits every value from head to tail. Returning false from visit
// stops the walk early. The list must not be mutated during the walk.
// Complexity: O(n).
func (l *List[T]) Each(visit func(v T) bool) {
	for id := l.head; id != none; id = l.nodes[id].next {
		if !visit(l.nodes[id].value) {
			return
		}
	}
}
