// Package list provides a generic singly linked list with head insertion
// and removal, stored in an index-addressed arena.
//
// What:
//
//   - List[T] owns all of its nodes in one contiguous arena slice; links are
//     int32 indices into that arena, not pointers.
//   - Slots freed by PopFront go to a free-list and are reused by the next
//     PushFront, so a push/pop steady state allocates nothing.
//   - PushFront / PopFront / Front operate on the head; values come back
//     in last-in-first-out order.
//   - Underflow is never fatal: PopFront and Front report emptiness via a bool.
//
// Why:
//
//   - The arena removes pointer-chain ownership from the picture entirely:
//     there is nothing to traverse on teardown (deep lists cannot blow the
//     stack) and node reuse keeps the allocator out of hot loops.
//
// Complexity:
//
//   - PushFront: O(1) amortized.
//   - PopFront:  O(1).
//   - Front:     O(1), never mutates.
//   - Len:       O(n) — a fresh traversal count every call, restartable.
//   - Each:      O(n).
//
// Concurrency: no internal locking. A List must be confined to one
// goroutine or guarded externally.
package list
