// Package smpls translates switching max-plus linear systems (SMPLS) into
// max-plus automata.
//
// An SMPLS is a finite state machine whose edges name scenarios, each
// scenario carrying a max-plus matrix that maps token completion times to new
// completion times. The translation expands every state into one state per
// token and every finite matrix cell into a delay-weighted edge. Models given
// as an I/O automaton with emitted and processed events are first synthesized
// into a scenario FSM whose matrices track pending events.
//
// Everything is organized under subpackages:
//
//	core/     - generic arena-backed automaton Graph with initial/final subsets
//	maxplus/  - max-plus values and dense matrices
//	smpls/    - pruning, translation, dissection, synthesis, consistency, determinization
//	dfs/      - depth-first traversal, reachability and cycle detection
//	bfs/      - breadth-first search and shortest accepted words
//	model/    - YAML model documents
//	render/   - Graphviz drawings of the automata
//	cmd/smpls - command-line front end
//
// Quick ASCII example (one scenario s on a self-loop, two tokens):
//
//	     s = | 1  -∞ |        (0,0) ──1──▶ (0,0)
//	         | 3   4 |        (0,0) ──3──▶ (0,1)
//	                          (0,1) ──4──▶ (0,1)
//
//	go install github.com/katalvlaran/smpls/cmd/smpls@latest
package smpls
