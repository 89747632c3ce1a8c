// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from one or
//     more start states.
//   - Result carries Order, Depth, Parent and the Via edge of each state, so
//     PathTo can rebuild a shortest path as a list of edges.
//   - ShortestWord turns that path into the edge labels read from an initial
//     state, e.g. a shortest accepted word of an I/O automaton.
//   - Hooks: OnVisit (may abort), FilterEdge, MaxDepth, and a Context.
//
// Determinism
//
//	Start states are seeded in the given order and successors are enqueued in
//	edge insertion order, so the visit sequence is reproducible.
//
// Complexity (V = |States|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
