// Package dfs implements depth-first search (single-source and forest) on a
// graph.Graph. It supports cancellation, pre- and post-order hooks, depth
// limiting, neighbor filtering, and full-graph traversal.
//
// The traversal is iterative: an explicit stack.Stack of frames replaces
// recursion, so graphs of any depth are safe — a million-vertex chain costs
// heap, not call stack.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter overhead.
//   - Memory: O(V) for the work-list and metadata maps.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if start is missing (single-source mode).
//   - ErrOptionViolation     for invalid options.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/strukt/graph"
	"github.com/katalvlaran/strukt/stack"
)

// frame is one work-list entry: a discovered vertex, its depth, its fetched
// neighbor list, and a cursor over the neighbors still to explore.
type frame[K comparable] struct {
	id    K
	depth int
	nbrs  []K
	next  int
}

// walker encapsulates mutable DFS state.
type walker[K comparable] struct {
	graph   *graph.Graph[K]
	opts    Options[K]
	work    *stack.Stack[*frame[K]]
	skipped int
	res     *Result[K]
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all disconnected components; otherwise it starts only from start.
// Returns the Result (possibly partial) and an error if aborted by context
// or hook.
func DFS[K comparable](g *graph.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options and catch invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hints
	n := g.VertexCount()
	w := &walker[K]{
		graph: g,
		opts:  o,
		work:  stack.New[*frame[K]](),
		res: &Result[K]{
			Order:   make([]K, 0, n),
			Exit:    make([]K, 0, n),
			Depth:   make(map[K]int, n),
			Parent:  make(map[K]K, n),
			Visited: make(map[K]bool, n),
		},
	}

	// 5. Traverse: forest or single tree
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err := w.run(v); err != nil {
					return w.res, err
				}
			}
		}
	} else {
		if err := w.run(start); err != nil {
			return w.res, err
		}
	}

	// 6. Expose diagnostics
	w.res.SkippedNeighbors = w.skipped

	return w.res, nil
}

// run explores one DFS tree rooted at root via the explicit work-list.
func (w *walker[K]) run(root K) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	for !w.work.IsEmpty() {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := w.work.Peek()
		if top.next >= len(top.nbrs) {
			// Descendants done: finish the vertex (post-order).
			w.work.Pop()
			if err := w.opts.OnExit(top.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %v: %w", top.id, err)
			}
			w.res.Exit = append(w.res.Exit, top.id)
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++

		if !w.opts.FilterNeighbor(nbr) {
			w.skipped++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		nextDepth := top.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nbr] = top.id
		if err := w.discover(nbr, nextDepth); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited at depth, records pre-order bookkeeping, fires
// OnVisit, and pushes a frame with id's neighbors onto the work-list.
func (w *walker[K]) discover(id K, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", id, err)
	}
	w.work.Push(&frame[K]{id: id, depth: depth, nbrs: nbrs})

	return nil
}
