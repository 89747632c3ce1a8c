// Package core provides the generic, arena-backed directed Graph that every
// automaton of this module is built on.
//
// The Graph G = (Q, E, I, F) carries:
//
//   - States Q, each with a unique comparable label S (state id, (id, token) pair, ...)
//   - Directed edges E, each with an arbitrary payload E (scenario name,
//     I/O action pair, max-plus weight, ...); parallel edges and self-loops allowed
//   - Two named subsets of Q: initial states I and final states F
//
// Why an arena?
//
//   - Stable handles: StateID and EdgeID index into slices and are never reused,
//     so removing an element cannot leave another element reachable through a
//     stale handle.
//   - Deterministic iteration: every enumeration walks the arenas in ascending
//     handle order, which is insertion order.
//   - Generic payloads: the "plain", "edge-labeled" and "I/O-labeled" automaton
//     flavours are instantiations of one type, never down-casts.
//
// Core Methods:
//
//	// State lifecycle
//	AddState(label S) StateID                 // O(1), idempotent per label
//	RemoveState(id StateID) error             // O(E), removes incident edges too
//	StateByLabel(label S) (StateID, error)    // O(1)
//	Label(id StateID) (S, error)              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from StateID, label E, to StateID) (EdgeID, error) // O(1)
//	RemoveEdge(eid EdgeID) error                               // O(out-degree)
//	Outgoing(id StateID) ([]Edge[E], error)                    // O(out-degree)
//
//	// Named subsets
//	AddInitial / AddFinal / IsInitial / IsFinal / Initial / Final
//
// Errors:
//
//	ErrStateNotFound – missing or removed state
//	ErrEdgeNotFound  – missing or removed edge
package core
