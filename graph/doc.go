// Package graph defines a minimal generic adjacency-list graph used by the
// traversal packages (bfs, dfs).
//
// What:
//
//   - Graph[K comparable] keyed by any comparable vertex type.
//   - AddVertex is idempotent; AddEdge inserts missing endpoints on the fly.
//   - Undirected by default; WithDirected makes every edge one-way.
//   - Parallel edges collapse: re-adding an existing edge is a no-op.
//   - Vertices and Neighbors iterate in insertion order, so traversals over
//     the same construction sequence are fully deterministic.
//
// Why:
//
//   - A small, predictable substrate for BFS/DFS without weights, flags, or
//     bookkeeping the traversals never read.
//
// Complexity:
//
//   - AddVertex / HasVertex: O(1) amortized.
//   - AddEdge:               O(deg) for the duplicate check.
//   - Neighbors / Vertices:  O(deg) / O(V) (defensive copies).
//
// Errors:
//
//   - ErrVertexNotFound — Neighbors was asked about an absent vertex.
//
// Concurrency: no internal locking. Concurrent reads are safe; any mutation
// requires external mutual exclusion.
package graph
