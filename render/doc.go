// Package render draws the automata of this module with Graphviz.
//
// A Writer lays out a scenario FSM, an I/O automaton or a max-plus automaton
// and renders it in the configured format (xdot by default). Final states are
// drawn as double circles and initial states in bold.
package render
