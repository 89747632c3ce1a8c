// SPDX-License-Identifier: MIT

// Package smpls translates scenario-based models into max-plus automata.
//
// A switching max-plus linear system (SMPLS) is a scenario FSM whose edges
// name scenarios, plus a table mapping each scenario to a max-plus matrix.
// BuildMaxPlusAutomaton expands every FSM state q into one state (q, k) per
// token k and turns every finite matrix entry M[row][col] of an edge q1→q2
// into an edge (q1, col) → (q2, row) carrying the delay.
//
// The event-aware flavour (EventModel) starts from an I/O automaton whose
// edges carry an (input, output) action pair. Output actions are modes that
// may emit events (σ); input actions are outcomes that process events (γ).
// Synthesis walks the I/O automaton depth first and builds, per edge, a
// scenario matrix grown with one column per pending event, so that events
// emitted on one edge can be processed on a later one. The synthesized
// matrices are dissected, padded to a common size and handed to the builder.
//
// Alongside the translation, EventModel checks that every path processes
// exactly the events it emits (IsConsistent) and writes a best-effort
// deterministic rendering of the I/O automaton (Determinize).
//
// Nothing in this package is safe for concurrent use: each operation takes
// exclusive ownership of the automata it mutates for the duration of the call.
//
// Errors:
//
//	ErrNotLoaded      – an operation needs an automaton that was never attached
//	ErrLookup         – a scenario, event or mode has no entry in its table
//	ErrNoInitialState – determinization of an automaton without initial state
//
// Bounds violations surface as maxplus.ErrOutOfRange.
package smpls
