package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strukt/tree"
)

// TestTree_BuildLeaves runs the scripted scenario: New(1), AddLeft(2),
// AddRight(3) → root 1, left 2, right 3.
func TestTree_BuildLeaves(t *testing.T) {
	tr := tree.New(1)
	left, err := tr.AddLeft(tr.Root(), 2)
	require.NoError(t, err)
	right, err := tr.AddRight(tr.Root(), 3)
	require.NoError(t, err)

	v, ok := tr.Value(tr.Root())
	require.True(t, ok)
	assert.Equal(t, 1, v)

	gotLeft, ok := tr.Left(tr.Root())
	require.True(t, ok)
	assert.Equal(t, left, gotLeft)
	v, _ = tr.Value(gotLeft)
	assert.Equal(t, 2, v)

	gotRight, ok := tr.Right(tr.Root())
	require.True(t, ok)
	assert.Equal(t, right, gotRight)
	v, _ = tr.Value(gotRight)
	assert.Equal(t, 3, v)

	assert.Equal(t, 3, tr.Len())
}

// TestTree_ReplaceDiscardsSubtree verifies the replace-on-add policy:
// grafting over an existing child releases its entire subtree.
func TestTree_ReplaceDiscardsSubtree(t *testing.T) {
	tr := tree.New(1)
	oldLeft, err := tr.AddLeft(tr.Root(), 2)
	require.NoError(t, err)
	// Grow a subtree under the left child so replacement has depth to discard.
	_, err = tr.AddLeft(oldLeft, 20)
	require.NoError(t, err)
	_, err = tr.AddRight(oldLeft, 21)
	require.NoError(t, err)
	require.Equal(t, 4, tr.Len())

	// Replace: the prior left subtree (3 nodes) is discarded wholesale.
	newLeft, err := tr.AddLeft(tr.Root(), 4)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Value(newLeft)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	// Ids into the discarded subtree are no longer live.
	_, ok = tr.Value(oldLeft)
	assert.False(t, ok, "released node must not resolve")
}

// TestTree_InvalidNode covers ErrInvalidNode for None, out-of-range, and
// released ids.
func TestTree_InvalidNode(t *testing.T) {
	tr := tree.New("root")
	if _, err := tr.AddLeft(tree.None, "x"); !errors.Is(err, tree.ErrInvalidNode) {
		t.Errorf("AddLeft(None): want ErrInvalidNode, got %v", err)
	}
	if _, err := tr.AddRight(tree.NodeID(99), "x"); !errors.Is(err, tree.ErrInvalidNode) {
		t.Errorf("AddRight(out of range): want ErrInvalidNode, got %v", err)
	}

	stale, _ := tr.AddLeft(tr.Root(), "old")
	_, _ = tr.AddLeft(tr.Root(), "new") // releases stale
	if _, err := tr.AddLeft(stale, "x"); !errors.Is(err, tree.ErrInvalidNode) {
		t.Errorf("AddLeft(stale): want ErrInvalidNode, got %v", err)
	}
}

// TestTree_ChildAbsence verifies the empty-result indicator on leaves.
func TestTree_ChildAbsence(t *testing.T) {
	tr := tree.New(1)
	if _, ok := tr.Left(tr.Root()); ok {
		t.Error("Left of leaf: want ok=false")
	}
	if _, ok := tr.Right(tr.Root()); ok {
		t.Error("Right of leaf: want ok=false")
	}
	if _, ok := tr.Value(tree.None); ok {
		t.Error("Value(None): want ok=false")
	}
}

// TestTree_WalkOrders checks all three traversal orders over a fixed shape:
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
func TestTree_WalkOrders(t *testing.T) {
	tr := tree.New(1)
	n2, _ := tr.AddLeft(tr.Root(), 2)
	_, _ = tr.AddRight(tr.Root(), 3)
	_, _ = tr.AddLeft(n2, 4)
	_, _ = tr.AddRight(n2, 5)

	cases := []struct {
		name  string
		order tree.Order
		want  []int
	}{
		{"pre-order", tree.PreOrder, []int{1, 2, 4, 5, 3}},
		{"in-order", tree.InOrder, []int{4, 2, 5, 1, 3}},
		{"post-order", tree.PostOrder, []int{4, 5, 2, 3, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tr.Values(tc.order)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			// Restartable: a second identical walk yields the same sequence.
			again, err := tr.Values(tc.order)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

// TestTree_WalkEarlyStop verifies that a false visitor halts the walk.
func TestTree_WalkEarlyStop(t *testing.T) {
	tr := tree.New(1)
	_, _ = tr.AddLeft(tr.Root(), 2)
	_, _ = tr.AddRight(tr.Root(), 3)

	var seen []int
	err := tr.Walk(tree.PreOrder, func(v int) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

// TestTree_WalkUnknownOrder verifies the order guard.
func TestTree_WalkUnknownOrder(t *testing.T) {
	tr := tree.New(1)
	err := tr.Walk(tree.Order(42), func(int) bool { return true })
	assert.ErrorIs(t, err, tree.ErrUnknownOrder)
}

// TestTree_DeepReplace releases a long spine through the work-list; depth
// must not matter.
func TestTree_DeepReplace(t *testing.T) {
	tr := tree.New(0)
	cur, err := tr.AddLeft(tr.Root(), 1)
	require.NoError(t, err)
	for i := 2; i <= 50_000; i++ {
		cur, err = tr.AddLeft(cur, i)
		require.NoError(t, err)
	}
	require.Equal(t, 50_001, tr.Len())

	// Replacing the root's left child discards the whole 50k spine at once.
	_, err = tr.AddLeft(tr.Root(), -1)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
}
