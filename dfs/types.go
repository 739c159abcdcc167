// Package dfs provides tunable options and error definitions for
// depth-first search over a graph.Graph.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start key is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize DFS execution.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is the pre-order hook, called on vertex discovery.
	// If it returns an error, DFS aborts and propagates that error.
	OnVisit func(id K) error

	// OnExit is the post-order hook, called after a vertex's descendants
	// are fully explored. An error aborts the traversal.
	OnExit func(id K) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a neighbor by returning false.
	FilterNeighbor func(neighbor K) bool

	// FullTraversal restarts DFS from every unvisited vertex in insertion
	// order, covering disconnected components; the start argument is ignored.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering, single-source traversal
//   - no-op hooks (OnVisit, OnExit)
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K) error { return nil },
		OnExit:         func(K) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the pre-order hook; returning an error from the
// hook stops the DFS.
func WithOnVisit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers the post-order hook; returning an error from the
// hook stops the DFS.
func WithOnExit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
// Skipped neighbors are counted in Result.SkippedNeighbors.
func WithFilterNeighbor[K comparable](fn func(neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal makes DFS cover every component of the graph, starting
// new trees at unvisited vertices in insertion order.
func WithFullTraversal[K comparable]() Option[K] {
	return func(o *Options[K]) {
		o.FullTraversal = true
	}
}

// Result holds the outcome of a DFS traversal:
//   - Order:   vertices in discovery (pre-order) sequence.
//   - Exit:    vertices in finish (post-order) sequence.
//   - Depth:   map from vertex key to its depth in the DFS tree.
//   - Parent:  map from vertex key to its predecessor in the DFS tree.
//   - Visited: set of reached vertices.
//   - SkippedNeighbors: count of neighbors rejected by FilterNeighbor.
type Result[K comparable] struct {
	Order            []K
	Exit             []K
	Depth            map[K]int
	Parent           map[K]K
	Visited          map[K]bool
	SkippedNeighbors int
}
