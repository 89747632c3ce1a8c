package smpls

import "errors"

// Sentinel errors; match with errors.Is.
var (
	// ErrNotLoaded is returned when an operation runs before its automaton was attached.
	ErrNotLoaded = errors.New("smpls: automaton is not loaded")

	// ErrLookup is returned when a scenario, event or mode is missing from its table.
	ErrLookup = errors.New("smpls: lookup failed")

	// ErrNoInitialState is returned by Determinize for an automaton without initial states.
	ErrNoInitialState = errors.New("smpls: no initial state")
)
