package model

import "errors"

// ErrInvalidModel is returned for documents that cannot describe an SMPLS.
var ErrInvalidModel = errors.New("model: invalid model")

// Document is the YAML root.
type Document struct {
	// Resources fixes the resource count; nil derives it from the matrices.
	Resources *int                 `yaml:"resources,omitempty"`
	Matrices  map[string][][]Value `yaml:"matrices"`
	FSM       *Automaton           `yaml:"fsm,omitempty"`
	IOA       *Automaton           `yaml:"ioa,omitempty"`
	Gamma     []Gamma              `yaml:"gamma,omitempty"`
	Sigma     []Sigma              `yaml:"sigma,omitempty"`
}

// Automaton describes either a scenario FSM (edges carry Scenario) or an
// I/O automaton (edges carry Input and Output).
type Automaton struct {
	States []State `yaml:"states"`
	Edges  []Edge  `yaml:"edges"`
}

// State is one automaton state.
type State struct {
	ID      int  `yaml:"id"`
	Initial bool `yaml:"initial,omitempty"`
	Final   bool `yaml:"final,omitempty"`
}

// Edge is one automaton edge.
type Edge struct {
	From     int    `yaml:"from"`
	To       int    `yaml:"to"`
	Scenario string `yaml:"scenario,omitempty"`
	Input    string `yaml:"input,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// Gamma is one (event, outcome) pair.
type Gamma struct {
	Event   string `yaml:"event"`
	Outcome string `yaml:"outcome"`
}

// Sigma is one (mode, event) pair.
type Sigma struct {
	Mode  string `yaml:"mode"`
	Event string `yaml:"event"`
}

// MaxPlus describes a translated max-plus automaton for output.
type MaxPlus struct {
	States []TokenState   `yaml:"states"`
	Edges  []WeightedEdge `yaml:"edges"`
}

// TokenState is one (id, token) state.
type TokenState struct {
	ID      int  `yaml:"id"`
	Token   int  `yaml:"token"`
	Initial bool `yaml:"initial,omitempty"`
	Final   bool `yaml:"final,omitempty"`
}

// WeightedEdge is one delay-weighted edge; endpoints are "(id,token)".
type WeightedEdge struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Delay    Value  `yaml:"delay"`
	Scenario string `yaml:"scenario"`
}
