// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering. The frontier
// is a queue.Queue, dequeued in strict FIFO order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/strukt/graph"
	"github.com/katalvlaran/strukt/queue"
)

// item pairs a vertex key with its BFS depth.
type item[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph    *graph.Graph[K]
	opts     Options[K]
	frontier *queue.Queue[item[K]]
	visited  map[K]bool
	res      *Result[K]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[K comparable](g *graph.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker with capacity hints
	n := g.VertexCount()
	frontier := queue.New[item[K]]()
	frontier.Grow(n)
	w := &walker[K]{
		graph:    g,
		opts:     o,
		frontier: frontier,
		visited:  make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed frontier with start vertex (no parent)
	w.enqueue(start, 0, start, false)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent link (unless it is
// the root), calls OnEnqueue, and adds it to the frontier.
func (w *walker[K]) enqueue(id K, d int, parent K, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.frontier.Enqueue(item[K]{id: id, depth: d})
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for !w.frontier.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		it, _ := w.frontier.Dequeue()
		w.opts.OnDequeue(it.id, it.depth)
		if err := w.visit(it); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(it); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[K]) visit(it item[K]) error {
	w.res.Order = append(w.res.Order, it.id)
	if err := w.opts.OnVisit(it.id, it.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", it.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker[K]) enqueueNeighbors(it item[K]) error {
	neighbors, err := w.graph.Neighbors(it.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", it.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(it.id, nbr) {
			continue
		}
		nextDepth := it.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, it.id, true)
		}
	}

	return nil
}
