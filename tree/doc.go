// Package tree provides a generic binary tree with manual left/right child
// placement, stored in an index-addressed arena.
//
// What:
//
//   - Tree[T] owns all of its nodes in one arena slice; children are NodeID
//     indices into that arena, not pointers. None marks an absent child.
//   - New(v) creates a single-leaf tree; AddLeft / AddRight graft fresh
//     leaves under any live node.
//   - Replace-on-add: grafting over an existing child discards that child's
//     entire subtree. The subtree's slots return to a free-list via an
//     explicit work-list — no recursion, so discarding arbitrarily deep
//     subtrees is safe. Callers needing the old child must read it first.
//   - No ordering invariant between parent and child values: this is a plain
//     binary tree, not a search tree.
//   - Walk traverses values in PreOrder, InOrder, or PostOrder; each call is
//     finite, restartable, and iterative (stack.Stack work-list).
//
// Why:
//
//   - Expression trees, decision trees, hand-built hierarchies.
//   - The arena sidesteps parent/child ownership: releasing a subtree is
//     list bookkeeping, not a cascade of destructors.
//
// Complexity:
//
//   - New / AddLeft / AddRight: O(1) amortized, plus O(k) to release a
//     replaced subtree of k nodes.
//   - Value / Left / Right / Len: O(1).
//   - Walk: O(n) time, O(h) work-list memory (h = tree height).
//
// Errors:
//
//   - ErrInvalidNode  — the NodeID does not address a live node of this tree.
//   - ErrUnknownOrder — Walk was given an Order outside Pre/In/PostOrder.
//
// Concurrency: no internal locking. A Tree must be confined to one
// goroutine or guarded externally.
package tree
