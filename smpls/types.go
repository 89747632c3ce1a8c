// SPDX-License-Identifier: MIT
// File: types.go
// Role: Label payloads and the three automaton flavours built on core.Graph.

package smpls

import (
	"fmt"

	"github.com/katalvlaran/smpls/core"
)

// IOLabel is the (input action, output action) pair on an I/O automaton edge.
// An empty string is the silent action ε.
type IOLabel struct {
	Input  string
	Output string
}

// String renders the label as "input,output".
func (l IOLabel) String() string { return l.Input + "," + l.Output }

// TokenState labels a max-plus automaton state: the originating FSM state
// and the token index within it.
type TokenState struct {
	ID    int
	Token int
}

// String renders the state as "(id,token)".
func (s TokenState) String() string { return fmt.Sprintf("(%d,%d)", s.ID, s.Token) }

// WeightedScenario labels a max-plus automaton edge: a finite delay and the
// scenario whose matrix produced it.
type WeightedScenario struct {
	Delay    float64
	Scenario string
}

// ScenarioFSM is a finite state machine with integer state ids and edges
// labeled by scenario name.
type ScenarioFSM = core.Graph[int, string]

// IOAutomaton is an automaton with integer state ids and edges labeled by
// (input, output) action pairs.
type IOAutomaton = core.Graph[int, IOLabel]

// MaxPlusAutomaton is the translation target: states are (id, token) pairs,
// edges carry a finite delay and their scenario.
type MaxPlusAutomaton = core.Graph[TokenState, WeightedScenario]

// NewScenarioFSM returns an empty scenario FSM.
func NewScenarioFSM() *ScenarioFSM { return core.New[int, string]() }

// NewIOAutomaton returns an empty I/O automaton.
func NewIOAutomaton() *IOAutomaton { return core.New[int, IOLabel]() }

// NewMaxPlusAutomaton returns an empty max-plus automaton.
func NewMaxPlusAutomaton() *MaxPlusAutomaton { return core.New[TokenState, WeightedScenario]() }
