package queue

// minCapacity is the smallest ring allocation; small enough to stay cheap
// for tiny queues, large enough to avoid immediate regrowth.
const minCapacity = 8

// Queue is a generic FIFO container over a circular buffer.
// head indexes the oldest element; the tail position is derived from
// head+count, wrapping modulo len(buf).
type Queue[T any] struct {
	buf   []T
	head  int
	count int
}

// New returns an empty Queue ready for use.
// Complexity: O(1).
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the tail of the queue.
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.buf) {
		q.resize(q.count * 2)
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
}

// Dequeue removes and returns the oldest element.
// Returns (zero, false) if the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	// Clear the vacated slot so the element can be collected.
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return v, true
}

// Peek returns the element Dequeue would return next, without removing it.
// Returns (zero, false) if the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}

	return q.buf[q.head], true
}

// Len reports the number of elements currently queued.
// Complexity: O(1).
func (q *Queue[T]) Len() int {
	return q.count
}

// IsEmpty reports whether the queue holds no elements.
// Complexity: O(1).
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Grow pre-allocates capacity for at least n additional enqueues.
// It never shrinks the queue and is a no-op for n <= 0.
// Complexity: O(Len) when reallocation occurs.
func (q *Queue[T]) Grow(n int) {
	if n <= 0 || len(q.buf)-q.count >= n {
		return
	}
	q.resize(q.count + n)
}

// resize replaces the ring with a fresh buffer of at least the requested
// capacity and unwraps the live elements to the front.
func (q *Queue[T]) resize(capacity int) {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	buf := make([]T, capacity)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
