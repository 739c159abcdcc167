// Package strukt is your in-memory toolbox of generic containers and the
// classic algorithms that put them to work — from linked lists and binary
// trees to graph traversals and textbook sorting.
//
// 🚀 What is strukt?
//
//	A small, pure-Go, generics-first library that brings together:
//		• Containers: singly linked list, binary tree, stack, queue
//		• Arena storage: list & tree nodes live in index-addressed arenas
//		  with free-lists — no pointer chains, no recursive teardown
//		• Graphs: a minimal adjacency-list graph with deterministic iteration
//		• Traversals: BFS, DFS (iterative, hook-driven, cancellable)
//		• Algorithms: bubble/insertion/quick sort, binary & linear search,
//		  DP Fibonacci, greedy coin change
//
// ✨ Why choose strukt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable failure – underflow and absence return (value, ok), never panic
//   - Pure Go – no cgo, generics all the way down
//   - Extensible – traversal hooks (OnVisit, OnEnqueue…) for custom logic
//
// Everything is organized into small focused packages:
//
//	list/    — arena-backed singly linked list (head insertion/removal)
//	tree/    — arena-backed binary tree with replace-on-add children
//	stack/   — slice-backed LIFO
//	queue/   — ring-buffer FIFO
//	graph/   — generic adjacency-list graph
//	bfs/     — breadth-first search over graph
//	dfs/     — depth-first search over graph (explicit work-list, no recursion)
//	sorting/ — in-place sorts on ordered slices
//	search/  — binary & linear search
//	dynamic/ — Fibonacci (DP) & coin change (greedy)
//
// Quick ASCII example:
//
//	    3 → 2 → 1
//
//	a list after PushFront(1), PushFront(2), PushFront(3) —
//	PopFront hands the values back in 3, 2, 1 order.
//
// None of the containers synchronize internally: give a container to one
// goroutine at a time, or guard it with your own lock.
//
//	go get github.com/katalvlaran/strukt
package strukt
