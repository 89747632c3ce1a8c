package smpls

import (
	"fmt"

	"go.uber.org/zap"
)

// SMPLS is a switching max-plus linear system: a scenario FSM and the
// matrix of every scenario.
type SMPLS struct {
	fsm   *ScenarioFSM
	table ScenarioTable
	cfg   config
}

// New wraps fsm and table. Both are owned by the returned value from now on.
func New(fsm *ScenarioFSM, table ScenarioTable, opts ...Option) *SMPLS {
	if table == nil {
		table = ScenarioTable{}
	}

	return &SMPLS{fsm: fsm, table: table, cfg: newConfig(opts)}
}

// FSM returns the scenario FSM.
func (s *SMPLS) FSM() *ScenarioFSM { return s.fsm }

// Table returns the scenario table.
func (s *SMPLS) Table() ScenarioTable { return s.table }

// RemoveDanglingStates prunes the FSM in place; see RemoveDanglingStates.
func (s *SMPLS) RemoveDanglingStates() int {
	n := RemoveDanglingStates(s.fsm)
	if n > 0 {
		s.cfg.logger.Info("removed dangling states", zap.Int("count", n))
	}

	return n
}

// TransposeMatrices replaces every scenario matrix by its transpose.
func (s *SMPLS) TransposeMatrices() { s.table.Transpose() }

// ConvertToMaxPlusAutomaton builds the max-plus automaton of the system.
// Returns ErrNotLoaded without an FSM.
func (s *SMPLS) ConvertToMaxPlusAutomaton() (*MaxPlusAutomaton, error) {
	if s.fsm == nil {
		return nil, fmt.Errorf("ConvertToMaxPlusAutomaton: scenario FSM: %w", ErrNotLoaded)
	}

	return BuildMaxPlusAutomaton(s.fsm, s.table, WithLogger(s.cfg.logger))
}
