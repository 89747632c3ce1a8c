// SPDX-License-Identifier: MIT
// File: eventmodel.go
// Role: SMPLS with events: I/O automaton + mode matrices + γ/σ, and the
// synthesis-to-automaton pipeline.

package smpls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/core"
	"github.com/katalvlaran/smpls/dfs"
)

// EventModel is an SMPLS whose scenario FSM is derived from an I/O
// automaton. Table holds one matrix per mode (output action); a matrix with
// more rows than columns carries the rows of the events the mode emits.
type EventModel struct {
	ioa   *IOAutomaton
	table ScenarioTable
	rel   Relations
	cfg   config

	last *Synthesis
}

// NewEventModel returns a model over ioa. A nil ioa is accepted; every
// operation then fails with ErrNotLoaded until SetIOAutomaton is called.
func NewEventModel(ioa *IOAutomaton, table ScenarioTable, rel Relations, opts ...Option) *EventModel {
	if table == nil {
		table = ScenarioTable{}
	}

	return &EventModel{ioa: ioa, table: table, rel: rel, cfg: newConfig(opts)}
}

// SetIOAutomaton attaches ioa, replacing any previous automaton.
func (m *EventModel) SetIOAutomaton(ioa *IOAutomaton) { m.ioa = ioa }

// IOAutomaton returns the attached automaton, or nil.
func (m *EventModel) IOAutomaton() *IOAutomaton { return m.ioa }

// Table returns the mode matrices.
func (m *EventModel) Table() ScenarioTable { return m.table }

// Relations returns γ and σ.
func (m *EventModel) Relations() Relations { return m.rel }

// Synthesized returns the result of the latest successful Synthesize or
// ConvertToMaxPlusAutomaton call, or nil.
func (m *EventModel) Synthesized() *Synthesis { return m.last }

// TransposeMatrices replaces every mode matrix by its transpose.
func (m *EventModel) TransposeMatrices() { m.table.Transpose() }

// Synthesize walks the I/O automaton from each initial state and returns the
// scenario FSM and matrix table it generates. The mode table is left untouched.
//
// Returns ErrNotLoaded without an I/O automaton and ErrLookup for a mode,
// event or outcome missing from its table.
func (m *EventModel) Synthesize() (*Synthesis, error) {
	if m.ioa == nil {
		return nil, fmt.Errorf("Synthesize: I/O automaton: %w", ErrNotLoaded)
	}
	log := m.cfg.logger

	dissected, resources, err := DissectTable(m.table)
	if err != nil {
		return nil, err
	}
	if m.cfg.hasResources {
		if len(dissected) > 0 && resources != m.cfg.resources {
			log.Warn("configured resource count differs from the dissected matrices",
				zap.Int("configured", m.cfg.resources), zap.Int("dissected", resources))
		}
		resources = m.cfg.resources
	}

	if cyclic, cycles, err := dfs.DetectCycles(m.ioa); err == nil && cyclic {
		log.Warn("I/O automaton is cyclic, each edge is synthesized once",
			zap.Int("cycles", len(cycles)))
	}

	s := &synthesizer{
		ioa:       m.ioa,
		rel:       m.rel,
		dissected: dissected,
		resources: resources,
		log:       log,
		fsm:       NewScenarioFSM(),
		table:     ScenarioTable{},
		visited:   make(map[core.EdgeID]bool),
	}
	for _, id := range m.ioa.States() {
		l, _ := m.ioa.Label(id)
		s.fsm.AddState(l)
	}

	for _, id := range m.ioa.Initial() {
		if err = s.prepare(id, nil); err != nil {
			return nil, err
		}
		if err = s.mirror(id, s.fsm.AddInitial); err != nil {
			return nil, err
		}
	}
	for _, id := range m.ioa.Final() {
		if err = s.mirror(id, s.fsm.AddFinal); err != nil {
			return nil, err
		}
	}

	m.last = &Synthesis{FSM: s.fsm, Table: s.table, Resources: resources, Size: s.biggest}
	log.Info("synthesis done",
		zap.Int("scenarios", len(s.table)),
		zap.Int("resources", resources),
		zap.Int("size", s.biggest))

	return m.last, nil
}

// mirror applies mark to the FSM state carrying the label of IOA state id.
func (s *synthesizer) mirror(id core.StateID, mark func(core.StateID) error) error {
	l, err := s.ioa.Label(id)
	if err != nil {
		return err
	}
	q, err := s.fsm.StateByLabel(l)
	if err != nil {
		return err
	}

	return mark(q)
}

// ConvertToMaxPlusAutomaton synthesizes the scenario matrices, pads them to
// a common square size and builds the max-plus automaton.
func (m *EventModel) ConvertToMaxPlusAutomaton() (*MaxPlusAutomaton, error) {
	syn, err := m.Synthesize()
	if err != nil {
		return nil, err
	}
	SquareTable(syn.Table, syn.Size)

	return BuildMaxPlusAutomaton(syn.FSM, syn.Table, WithLogger(m.cfg.logger))
}
