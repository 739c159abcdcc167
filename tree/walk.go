package tree

import "github.com/katalvlaran/strukt/stack"

// Order selects the sequence in which Walk visits values.
type Order int

const (
	// PreOrder visits a node before its children: node, left, right.
	PreOrder Order = iota

	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder

	// PostOrder visits both children before the node: left, right, node.
	PostOrder
)

// frame is one work-list entry. expanded distinguishes a node scheduled for
// visiting from one still awaiting child expansion, which is how a single
// explicit stack expresses all three recursive orders.
type frame struct {
	id       NodeID
	expanded bool
}

// Walk visits every value of the tree in the given order, calling visit for
// each. Returning false from visit stops the walk early.
//
// Each call re-seeds its work-list from the root, so the traversal is finite
// and restartable: repeated calls over an unchanged tree yield the same
// sequence. The tree must not be mutated during the walk.
//
// Returns ErrUnknownOrder for an order outside Pre/In/PostOrder.
// Complexity: O(n) time, O(h) memory (h = tree height).
func (t *Tree[T]) Walk(order Order, visit func(v T) bool) error {
	switch order {
	case PreOrder, InOrder, PostOrder:
	default:
		return ErrUnknownOrder
	}

	work := stack.New[frame]()
	work.Push(frame{id: t.root})
	for {
		f, ok := work.Pop()
		if !ok {
			return nil
		}
		n := t.nodes[f.id]

		// A re-pushed frame only needs its visit.
		if f.expanded {
			if !visit(n.value) {
				return nil
			}
			continue
		}

		// Push in reverse of the desired emission order: the stack reverses.
		switch order {
		case PreOrder:
			if n.right != None {
				work.Push(frame{id: n.right})
			}
			if n.left != None {
				work.Push(frame{id: n.left})
			}
			if !visit(n.value) {
				return nil
			}
		case InOrder:
			if n.right != None {
				work.Push(frame{id: n.right})
			}
			work.Push(frame{id: f.id, expanded: true})
			if n.left != None {
				work.Push(frame{id: n.left})
			}
		case PostOrder:
			work.Push(frame{id: f.id, expanded: true})
			if n.right != None {
				work.Push(frame{id: n.right})
			}
			if n.left != None {
				work.Push(frame{id: n.left})
			}
		}
	}
}

// Values collects the full traversal of the tree in the given order.
// Convenience wrapper over Walk.
// Complexity: O(n).
func (t *Tree[T]) Values(order Order) ([]T, error) {
	out := make([]T, 0, t.count)
	err := t.Walk(order, func(v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
