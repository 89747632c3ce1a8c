package smpls

import (
	"fmt"

	"github.com/katalvlaran/smpls/core"
)

// Report is the outcome of a consistency check. An inconsistent model is a
// regular analysis result, not an error.
type Report struct {
	Consistent bool
	// Message describes the first violation found; empty when Consistent.
	Message string
}

// IsConsistent checks, depth first from every initial state, that
//   - no final state is reached with pending events,
//   - no input action processes an event that is not pending,
//   - every state is reached with the same pending events on every path.
//
// Pending events form an insertion-ordered list here: emission appends every
// event of the mode, processing removes the first event e with (e, input) ∈ γ.
// States are expanded once; later arrivals are only compared.
//
// Returns ErrNotLoaded without an I/O automaton.
func (m *EventModel) IsConsistent() (Report, error) {
	if m.ioa == nil {
		return Report{}, fmt.Errorf("IsConsistent: I/O automaton: %w", ErrNotLoaded)
	}

	c := &checker{ioa: m.ioa, rel: m.rel, visited: make(map[core.StateID][]string)}
	for _, id := range m.ioa.Initial() {
		if err := c.walk(id, nil); err != nil {
			return Report{}, err
		}
		if c.msg != "" {
			break
		}
	}

	return Report{Consistent: c.msg == "", Message: c.msg}, nil
}

type checker struct {
	ioa     *IOAutomaton
	rel     Relations
	visited map[core.StateID][]string
	msg     string
}

func (c *checker) walk(id core.StateID, events []string) error {
	label, err := c.ioa.Label(id)
	if err != nil {
		return err
	}
	if seen, ok := c.visited[id]; ok {
		if !sameEvents(seen, events) {
			c.msg = fmt.Sprintf("Different paths leading to different events at state %d", label)
		}
		return nil
	}
	c.visited[id] = append([]string(nil), events...)

	if c.ioa.IsFinal(id) {
		if len(events) > 0 {
			c.msg = fmt.Sprintf("Event %s has not been processed by the end of the word.", events[0])
		}
		return nil
	}

	out, err := c.ioa.Outgoing(id)
	if err != nil {
		return err
	}
	for _, e := range out {
		next := append([]string(nil), events...)
		if in := e.Label.Input; in != "" {
			i := c.processedIndex(next, in)
			if i < 0 {
				c.msg = fmt.Sprintf("on edge: %d - %s, Processing event outcome : %s where the event is not emitted yet.",
					label, e.Label, in)
				return nil
			}
			next = append(next[:i], next[i+1:]...)
		}
		if e.Label.Output != "" {
			next = append(next, c.rel.EventsOfMode(e.Label.Output)...)
		}

		if err = c.walk(e.To, next); err != nil || c.msg != "" {
			return err
		}
	}

	return nil
}

// processedIndex returns the index of the first event processed by outcome, or -1.
func (c *checker) processedIndex(events []string, outcome string) int {
	for i, ev := range events {
		if c.rel.Processes(ev, outcome) {
			return i
		}
	}

	return -1
}

// sameEvents reports whether a and b have equal length and every element of
// a occurs in b.
func sameEvents(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
