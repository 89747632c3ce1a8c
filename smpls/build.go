// SPDX-License-Identifier: MIT
// File: build.go
// Role: Scenario FSM + scenario table → max-plus automaton.
// Determinism:
//   - States are expanded in FSM handle order, edges in insertion order,
//     matrix cells row-major; the output is identical across runs.

package smpls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/core"
	"github.com/katalvlaran/smpls/maxplus"
)

// BuildMaxPlusAutomaton expands fsm into a max-plus automaton.
//
// Steps:
//  1. Every FSM state q gets n states (q, 0..n-1), where n is the column
//     count of the matrix of q's first outgoing edge. A state without
//     outgoing edges uses the first matrix of the table (by name) and a
//     warning is logged. Initial and final flags are copied.
//  2. Every edge q1 →s q2 and every finite M_s[row][col] yield an edge
//     (q1, col) → (q2, row) labeled {M_s[row][col], s}.
//
// Returns ErrLookup for a scenario missing from table, and
// core.ErrStateNotFound when a matrix has more rows than the destination
// state has tokens.
func BuildMaxPlusAutomaton(fsm *ScenarioFSM, table ScenarioTable, opts ...Option) (*MaxPlusAutomaton, error) {
	if fsm == nil {
		return nil, fmt.Errorf("BuildMaxPlusAutomaton: scenario FSM: %w", ErrNotLoaded)
	}
	cfg := newConfig(opts)
	mpa := NewMaxPlusAutomaton()

	for _, q := range fsm.States() {
		if err := expandState(fsm, table, mpa, q, cfg.logger); err != nil {
			return nil, err
		}
	}

	for _, e := range fsm.Edges() {
		if err := instantiateEdge(fsm, table, mpa, e); err != nil {
			return nil, err
		}
	}

	return mpa, nil
}

// expandState creates the token states of FSM state q.
func expandState(fsm *ScenarioFSM, table ScenarioTable, mpa *MaxPlusAutomaton, q core.StateID, log *zap.Logger) error {
	id, err := fsm.Label(q)
	if err != nil {
		return err
	}
	n, err := tokenCount(fsm, table, q)
	if err != nil {
		return fmt.Errorf("state %d: %w", id, err)
	}
	if n < 0 {
		name, m, ok := table.First()
		n = 0
		if ok {
			n = m.Cols()
		}
		log.Warn("state without outgoing edges, token count taken from first scenario",
			zap.Int("state", id), zap.String("scenario", name), zap.Int("tokens", n))
	}

	initial, final := fsm.IsInitial(q), fsm.IsFinal(q)
	for k := 0; k < n; k++ {
		s := mpa.AddState(TokenState{ID: id, Token: k})
		if initial {
			_ = mpa.AddInitial(s)
		}
		if final {
			_ = mpa.AddFinal(s)
		}
	}

	return nil
}

// tokenCount returns the column count of the matrix on q's first outgoing
// edge, or -1 when q has no outgoing edge.
func tokenCount(fsm *ScenarioFSM, table ScenarioTable, q core.StateID) (int, error) {
	out, err := fsm.Outgoing(q)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return -1, nil
	}
	m, err := table.Get(out[0].Label)
	if err != nil {
		return 0, err
	}

	return m.Cols(), nil
}

// instantiateEdge adds one max-plus edge per finite cell of e's matrix.
func instantiateEdge(fsm *ScenarioFSM, table ScenarioTable, mpa *MaxPlusAutomaton, e core.Edge[string]) error {
	m, err := table.Get(e.Label)
	if err != nil {
		return fmt.Errorf("edge %d: %w", e.ID, err)
	}
	q1, err := fsm.Label(e.From)
	if err != nil {
		return err
	}
	q2, err := fsm.Label(e.To)
	if err != nil {
		return err
	}

	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			d, _ := m.At(row, col)
			if maxplus.IsMinusInfinity(d) {
				continue
			}
			src, err := mpa.StateByLabel(TokenState{ID: q1, Token: col})
			if err != nil {
				return fmt.Errorf("scenario %q: source token: %w", e.Label, err)
			}
			dst, err := mpa.StateByLabel(TokenState{ID: q2, Token: row})
			if err != nil {
				return fmt.Errorf("scenario %q: destination token: %w", e.Label, err)
			}
			if _, err = mpa.AddEdge(src, WeightedScenario{Delay: d, Scenario: e.Label}, dst); err != nil {
				return err
			}
		}
	}

	return nil
}
