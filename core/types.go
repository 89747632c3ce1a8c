// Package core defines the generic labeled Graph used by every automaton in
// this module, together with its handle types, the Edge value and the sentinel
// errors returned by graph mutations and queries.
//
// States and edges live in two arenas (slices) and are addressed by stable
// integer handles (StateID, EdgeID). Removing a state or an edge marks its slot
// as dead instead of reallocating, so a handle never silently starts pointing at
// a different element.
//
// Errors:
//
//	ErrStateNotFound - handle or label does not name a live state.
//	ErrEdgeNotFound  - handle does not name a live edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrStateNotFound indicates an operation referenced a non-existent or removed state.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent or removed edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// StateID is a stable handle of a state inside one Graph.
// Handles are assigned in insertion order starting at 0 and are never reused.
type StateID int

// EdgeID is a stable handle of an edge inside one Graph.
// Handles are assigned in insertion order starting at 0 and are never reused.
type EdgeID int

// Edge is a snapshot of one directed, labeled edge.
//
// Edge values are copies: mutating a returned Edge does not touch the Graph.
type Edge[E any] struct {
	// ID is the stable handle of this edge.
	ID EdgeID

	// From is the source state.
	From StateID

	// To is the destination state.
	To StateID

	// Label is the edge payload (scenario name, I/O action pair, weight...).
	Label E
}

// stateSlot is one arena cell of the state catalog.
type stateSlot[S comparable] struct {
	label S        // user-visible label, unique among live states
	out   []EdgeID // outgoing edges in insertion order
	alive bool     // false once removed
}

// edgeSlot is one arena cell of the edge catalog.
type edgeSlot[E any] struct {
	edge  Edge[E]
	alive bool
}

// Graph is a directed multigraph whose states carry a comparable label S and
// whose edges carry a payload E. Two named state subsets, initial and final,
// are maintained alongside the topology.
//
// Iteration order is deterministic: States, Edges, Outgoing, Initial and Final
// all enumerate in ascending handle order, which equals insertion order.
//
// mu guards every field; the graph is safe for concurrent readers, while the
// algorithms built on top of it assume exclusive ownership during mutation.
type Graph[S comparable, E any] struct {
	mu sync.RWMutex

	// Storage
	states  []stateSlot[S]       // state arena, indexed by StateID
	edges   []edgeSlot[E]        // edge arena, indexed by EdgeID
	byLabel map[S]StateID        // live label → handle
	initial map[StateID]struct{} // initial-state subset
	final   map[StateID]struct{} // final-state subset

	// Live counters, kept in sync with the alive flags.
	liveStates int
	liveEdges  int
}

// New creates an empty Graph.
// Complexity: O(1).
func New[S comparable, E any]() *Graph[S, E] {
	return &Graph[S, E]{
		byLabel: make(map[S]StateID),
		initial: make(map[StateID]struct{}),
		final:   make(map[StateID]struct{}),
	}
}
