// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edge/Outgoing/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by EdgeID asc.
//   - Outgoing() keeps insertion order of the source state's edge list.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge creates a directed edge from → to carrying label and returns its handle.
// Parallel edges and self-loops are always allowed; automata need both.
//
// Steps:
//  1. Lock mu, validate both endpoints are live.
//  2. Append the edge to the arena (handle = arena length).
//  3. Append the handle to the source state's outgoing list.
//
// Returns ErrStateNotFound if either endpoint is missing.
// Complexity: O(1) amortized.
func (g *Graph[S, E]) AddEdge(from StateID, label E, to StateID) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasStateLocked(from) {
		return -1, fmt.Errorf("AddEdge(%d→%d): source: %w", from, to, ErrStateNotFound)
	}
	if !g.hasStateLocked(to) {
		return -1, fmt.Errorf("AddEdge(%d→%d): destination: %w", from, to, ErrStateNotFound)
	}

	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot[E]{
		edge:  Edge[E]{ID: eid, From: from, To: to, Label: label},
		alive: true,
	})
	g.states[from].out = append(g.states[from].out, eid)
	g.liveEdges++

	return eid, nil
}

// RemoveEdge detaches edge eid from the graph and from its source state's
// outgoing list.
// Returns ErrEdgeNotFound if eid is not a live edge.
// Complexity: O(out-degree of the source).
func (g *Graph[S, E]) RemoveEdge(eid EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdgeLocked(eid) {
		return fmt.Errorf("RemoveEdge(%d): %w", eid, ErrEdgeNotFound)
	}
	g.removeEdgeLocked(eid)

	return nil
}

// Edge returns a snapshot of edge eid.
// Returns ErrEdgeNotFound if eid is not a live edge.
// Complexity: O(1).
func (g *Graph[S, E]) Edge(eid EdgeID) (Edge[E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasEdgeLocked(eid) {
		return Edge[E]{}, fmt.Errorf("Edge(%d): %w", eid, ErrEdgeNotFound)
	}

	return g.edges[eid].edge, nil
}

// HasEdge reports whether eid names a live edge.
func (g *Graph[S, E]) HasEdge(eid EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(eid)
}

// Outgoing returns snapshots of the edges leaving state id, in insertion order.
// The returned slice is freshly allocated; callers may mutate the graph while
// ranging over it.
//
// Returns ErrStateNotFound if id is not a live state.
// Complexity: O(out-degree).
func (g *Graph[S, E]) Outgoing(id StateID) ([]Edge[E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasStateLocked(id) {
		return nil, fmt.Errorf("Outgoing(%d): %w", id, ErrStateNotFound)
	}
	out := make([]Edge[E], 0, len(g.states[id].out))
	for _, eid := range g.states[id].out {
		out = append(out, g.edges[eid].edge)
	}

	return out, nil
}

// OutDegree returns the number of edges leaving state id.
// Returns ErrStateNotFound if id is not a live state.
func (g *Graph[S, E]) OutDegree(id StateID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasStateLocked(id) {
		return 0, fmt.Errorf("OutDegree(%d): %w", id, ErrStateNotFound)
	}

	return len(g.states[id].out), nil
}

// Edges returns snapshots of all live edges sorted by EdgeID asc.
// Complexity: O(E_total).
func (g *Graph[S, E]) Edges() []Edge[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[E], 0, g.liveEdges)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, g.edges[i].edge)
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[S, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveEdges
}

// hasEdgeLocked reports whether eid names a live edge. Caller holds mu.
func (g *Graph[S, E]) hasEdgeLocked(eid EdgeID) bool {
	return eid >= 0 && int(eid) < len(g.edges) && g.edges[eid].alive
}

// removeEdgeLocked marks eid dead and unlinks it from its source's outgoing
// list, preserving the order of the remaining edges. Caller holds mu and has
// verified that eid is live.
func (g *Graph[S, E]) removeEdgeLocked(eid EdgeID) {
	slot := &g.edges[eid]
	src := &g.states[slot.edge.From]
	for i, id := range src.out {
		if id == eid {
			src.out = append(src.out[:i:i], src.out[i+1:]...)
			break
		}
	}
	slot.alive = false
	g.liveEdges--
}
