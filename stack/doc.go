// Package stack provides a generic last-in-first-out container backed by a
// growable slice.
//
// What:
//
//   - Stack[T] holds any element type; New returns an empty stack.
//   - Push / Pop / Peek with amortized O(1) cost.
//   - Underflow is never fatal: Pop and Peek report emptiness via a bool.
//
// Why:
//
//   - Expression evaluation, undo histories, DFS work-lists.
//   - The tree and dfs packages in this module use Stack as their explicit
//     work-list instead of recursing.
//
// Complexity:
//
//   - Push:  O(1) amortized (slice doubling).
//   - Pop:   O(1).
//   - Peek:  O(1), never mutates.
//   - Len:   O(1).
//
// Concurrency: no internal locking. A Stack must be confined to one
// goroutine or guarded externally.
package stack
