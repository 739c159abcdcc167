package graph

import "errors"

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Option configures a Graph before first use.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected makes every edge one-way (from → to).
// The default is undirected: AddEdge links both endpoints.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// Graph is an in-memory adjacency-list graph over comparable vertex keys.
// verts preserves insertion order for deterministic iteration; adj holds
// per-vertex neighbor lists in the order edges were added.
type Graph[K comparable] struct {
	directed bool
	seen     map[K]struct{}
	verts    []K
	adj      map[K][]K
	edges    int
}

// New creates an empty Graph with the given options.
// Complexity: O(1).
func New[K comparable](opts ...Option) *Graph[K] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed: cfg.directed,
		seen:     make(map[K]struct{}),
		adj:      make(map[K][]K),
	}
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph[K]) Directed() bool {
	return g.directed
}

// AddVertex inserts a vertex with the given key.
// Adding an existing vertex is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	if _, exists := g.seen[id]; exists {
		return
	}
	g.seen[id] = struct{}{}
	g.verts = append(g.verts, id)
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	_, exists := g.seen[id]

	return exists
}

// AddEdge connects from → to, inserting either endpoint if missing.
// In undirected graphs the reverse link is added as well. Re-adding an
// existing edge is a no-op; a self-loop links a vertex to itself once.
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph[K]) AddEdge(from, to K) {
	g.AddVertex(from)
	g.AddVertex(to)
	if g.hasArc(from, to) {
		return
	}
	g.adj[from] = append(g.adj[from], to)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], from)
	}
	g.edges++
}

// hasArc reports whether a from → to link already exists.
func (g *Graph[K]) hasArc(from, to K) bool {
	for _, nbr := range g.adj[from] {
		if nbr == to {
			return true
		}
	}

	return false
}

// Neighbors returns the vertices reachable from id by one edge, in the
// order their edges were added. The slice is a copy; callers may keep it.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	nbrs := g.adj[id]
	out := make([]K, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Vertices returns all vertex keys in insertion order.
// The slice is a copy; callers may keep it.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.verts))
	copy(out, g.verts)

	return out
}

// VertexCount reports the number of vertices.
// Complexity: O(1).
func (g *Graph[K]) VertexCount() int {
	return len(g.verts)
}

// EdgeCount reports the number of logical edges added (an undirected edge
// counts once).
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	return g.edges
}
