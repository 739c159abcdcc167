// Package queue provides a generic first-in-first-out container backed by a
// circular buffer.
//
// What:
//
//   - Queue[T] holds any element type; New returns an empty queue.
//   - Enqueue appends at the tail, Dequeue removes from the head.
//   - The backing array is a ring: head and tail chase each other, and the
//     buffer doubles when full, so no element ever shifts on dequeue.
//   - Underflow is never fatal: Dequeue and Peek report emptiness via a bool.
//
// Why:
//
//   - Breadth-first frontiers, pipelines, fair work distribution.
//   - The bfs package in this module uses Queue as its frontier.
//
// Complexity:
//
//   - Enqueue: O(1) amortized (buffer doubling).
//   - Dequeue: O(1).
//   - Peek:    O(1), never mutates.
//   - Len:     O(1).
//
// Concurrency: no internal locking. A Queue must be confined to one
// goroutine or guarded externally.
package queue
