// Package model reads and writes the YAML documents that describe an SMPLS:
// scenario matrices, a scenario FSM or an I/O automaton, the event relations
// γ and σ, and the resource count.
//
//	resources: 1
//	matrices:
//	  m1: [[2], [5]]          # core [2], event row [5]
//	ioa:
//	  states: [{id: 0, initial: true}, {id: 1}, {id: 2, final: true}]
//	  edges:
//	    - {from: 0, to: 1, output: m1}
//	    - {from: 1, to: 2, input: o1}
//	gamma: [{event: e1, outcome: o1}]
//	sigma: [{mode: m1, event: e1}]
//
// Matrix cells are numbers or "-inf" (also YAML's -.inf) for the max-plus zero.
// Validate reports every structural problem at once.
package model
