// File: methods_states.go
// Role: State lifecycle, lookups and the initial/final subsets.
//
// Determinism:
//   - States(), Initial() and Final() return handles in ascending order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"sort"
)

// AddState inserts a state labeled label and returns its handle.
// If a live state with the same label already exists, its handle is returned
// and the graph is left untouched (idempotent, like AddVertex).
//
// Complexity: O(1) amortized.
func (g *Graph[S, E]) AddState(label S) StateID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.byLabel[label]; ok {
		return id // no-op for an existing label
	}
	id := StateID(len(g.states))
	g.states = append(g.states, stateSlot[S]{label: label, alive: true})
	g.byLabel[label] = id
	g.liveStates++

	return id
}

// HasState reports whether a live state carries label.
// Complexity: O(1).
func (g *Graph[S, E]) HasState(label S) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.byLabel[label]

	return ok
}

// StateByLabel resolves a label to its state handle.
// Returns ErrStateNotFound if no live state carries label.
// Complexity: O(1).
func (g *Graph[S, E]) StateByLabel(label S) (StateID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.byLabel[label]
	if !ok {
		return -1, fmt.Errorf("StateByLabel(%v): %w", label, ErrStateNotFound)
	}

	return id, nil
}

// Label returns the label of state id.
// Returns ErrStateNotFound for a dead or unknown handle.
// Complexity: O(1).
func (g *Graph[S, E]) Label(id StateID) (S, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasStateLocked(id) {
		var zero S
		return zero, fmt.Errorf("Label(%d): %w", id, ErrStateNotFound)
	}

	return g.states[id].label, nil
}

// RemoveState deletes state id together with every edge that enters or leaves it,
// and drops it from the initial and final subsets.
// The slot is marked dead; id is never handed out again.
//
// Returns ErrStateNotFound if id is not a live state.
// Complexity: O(E) because incoming edges are found by scanning the edge arena.
func (g *Graph[S, E]) RemoveState(id StateID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasStateLocked(id) {
		return fmt.Errorf("RemoveState(%d): %w", id, ErrStateNotFound)
	}
	// Drop every incident edge first, so no live edge refers to a dead state.
	for i := range g.edges {
		slot := &g.edges[i]
		if slot.alive && (slot.edge.From == id || slot.edge.To == id) {
			g.removeEdgeLocked(slot.edge.ID)
		}
	}

	st := &g.states[id]
	delete(g.byLabel, st.label)
	delete(g.initial, id)
	delete(g.final, id)
	st.out = nil
	st.alive = false
	g.liveStates--

	return nil
}

// States returns the handles of all live states in ascending order.
// Complexity: O(V_total) where V_total counts dead slots too.
func (g *Graph[S, E]) States() []StateID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]StateID, 0, g.liveStates)
	for i := range g.states {
		if g.states[i].alive {
			out = append(out, StateID(i))
		}
	}

	return out
}

// StateCount returns the number of live states.
// Complexity: O(1).
func (g *Graph[S, E]) StateCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveStates
}

// AddInitial marks state id as initial. Marking twice is a no-op.
// Returns ErrStateNotFound if id is not a live state.
func (g *Graph[S, E]) AddInitial(id StateID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.hasStateLocked(id) {
		return fmt.Errorf("AddInitial(%d): %w", id, ErrStateNotFound)
	}
	g.initial[id] = struct{}{}

	return nil
}

// AddFinal marks state id as final. Marking twice is a no-op.
// Returns ErrStateNotFound if id is not a live state.
func (g *Graph[S, E]) AddFinal(id StateID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.hasStateLocked(id) {
		return fmt.Errorf("AddFinal(%d): %w", id, ErrStateNotFound)
	}
	g.final[id] = struct{}{}

	return nil
}

// IsInitial reports whether id is a live initial state.
func (g *Graph[S, E]) IsInitial(id StateID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.initial[id]

	return ok
}

// IsFinal reports whether id is a live final state.
func (g *Graph[S, E]) IsFinal(id StateID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.final[id]

	return ok
}

// Initial returns the initial states in ascending handle order.
func (g *Graph[S, E]) Initial() []StateID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedSet(g.initial)
}

// Final returns the final states in ascending handle order.
func (g *Graph[S, E]) Final() []StateID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedSet(g.final)
}

// hasStateLocked reports whether id names a live state. Caller holds mu.
func (g *Graph[S, E]) hasStateLocked(id StateID) bool {
	return id >= 0 && int(id) < len(g.states) && g.states[id].alive
}

// sortedSet flattens a handle set into an ascending slice.
func sortedSet(set map[StateID]struct{}) []StateID {
	out := make([]StateID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
