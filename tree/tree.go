package tree

import (
	"errors"

	"github.com/katalvlaran/strukt/stack"
)

// Sentinel errors for tree operations.
var (
	// ErrInvalidNode indicates a NodeID that is None, out of range, or
	// addresses a slot already released to the free-list.
	ErrInvalidNode = errors.New("tree: node id does not address a live node")

	// ErrUnknownOrder indicates a Walk order outside Pre/In/PostOrder.
	ErrUnknownOrder = errors.New("tree: unknown traversal order")
)

// NodeID addresses a node within its Tree's arena.
// IDs are only meaningful for the Tree that issued them.
type NodeID int32

// None is the absent-child sentinel.
const None NodeID = -1

// node is one arena slot: a value, two child indices, and a liveness flag
// that distinguishes occupied slots from free-listed ones.
type node[T any] struct {
	value T
	left  NodeID
	right NodeID
	live  bool
}

// Tree is a binary tree whose nodes live in an arena and reference their
// children by NodeID. The root is always live; released subtrees recycle
// their slots through the free-list.
type Tree[T any] struct {
	nodes []node[T]
	free  []NodeID
	root  NodeID
	count int
}

// New returns a Tree holding a single leaf with the given value.
// Complexity: O(1).
func New[T any](v T) *Tree[T] {
	t := &Tree[T]{root: None}
	t.root = t.alloc(v)

	return t
}

// Root returns the id of the root node. The root is never released, so the
// returned id stays valid for the lifetime of the tree.
// Complexity: O(1).
func (t *Tree[T]) Root() NodeID {
	return t.root
}

// Len reports the number of live nodes.
// Complexity: O(1).
func (t *Tree[T]) Len() int {
	return t.count
}

// alloc takes a slot from the free-list, or extends the arena, and fills it
// with a fresh leaf.
func (t *Tree[T]) alloc(v T) NodeID {
	t.count++
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = node[T]{value: v, left: None, right: None, live: true}

		return id
	}
	t.nodes = append(t.nodes, node[T]{value: v, left: None, right: None, live: true})

	return NodeID(len(t.nodes) - 1)
}

// valid reports whether id addresses a live slot of this tree's arena.
func (t *Tree[T]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

// AddLeft grafts a fresh leaf holding v as the left child of id and returns
// the new child's id. An existing left child is silently replaced and its
// whole subtree released; read Left first if you need to keep it.
// Returns ErrInvalidNode if id is not a live node.
// Complexity: O(1) amortized, plus O(k) for a replaced subtree of k nodes.
func (t *Tree[T]) AddLeft(id NodeID, v T) (NodeID, error) {
	if !t.valid(id) {
		return None, ErrInvalidNode
	}
	t.release(t.nodes[id].left)
	child := t.alloc(v)
	t.nodes[id].left = child

	return child, nil
}

// AddRight grafts a fresh leaf holding v as the right child of id and
// returns the new child's id. An existing right child is silently replaced
// and its whole subtree released.
// Returns ErrInvalidNode if id is not a live node.
// Complexity: O(1) amortized, plus O(k) for a replaced subtree of k nodes.
func (t *Tree[T]) AddRight(id NodeID, v T) (NodeID, error) {
	if !t.valid(id) {
		return None, ErrInvalidNode
	}
	t.release(t.nodes[id].right)
	child := t.alloc(v)
	t.nodes[id].right = child

	return child, nil
}

// Value returns the value stored at id.
// Returns (zero, false) if id is not a live node.
// Complexity: O(1).
func (t *Tree[T]) Value(id NodeID) (T, bool) {
	var zero T
	if !t.valid(id) {
		return zero, false
	}

	return t.nodes[id].value, true
}

// Left returns the id of the left child of id.
// Returns (None, false) if id is not a live node or has no left child.
// Complexity: O(1).
func (t *Tree[T]) Left(id NodeID) (NodeID, bool) {
	if !t.valid(id) || t.nodes[id].left == None {
		return None, false
	}

	return t.nodes[id].left, true
}

// Right returns the id of the right child of id.
// Returns (None, false) if id is not a live node or has no right child.
// Complexity: O(1).
func (t *Tree[T]) Right(id NodeID) (NodeID, bool) {
	if !t.valid(id) || t.nodes[id].right == None {
		return None, false
	}

	return t.nodes[id].right, true
}

// release returns the subtree rooted at id to the free-list.
// An explicit stack.Stack work-list replaces recursion, so subtree depth is
// bounded only by available heap.
func (t *Tree[T]) release(id NodeID) {
	if id == None {
		return
	}
	work := stack.New[NodeID]()
	work.Push(id)
	for {
		cur, ok := work.Pop()
		if !ok {
			break
		}
		n := t.nodes[cur]
		if n.left != None {
			work.Push(n.left)
		}
		if n.right != None {
			work.Push(n.right)
		}
		// Clear the slot so the value can be collected, and mark it free.
		t.nodes[cur] = node[T]{left: None, right: None}
		t.free = append(t.free, cur)
		t.count--
	}
}
