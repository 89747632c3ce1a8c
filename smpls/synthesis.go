// SPDX-License-Identifier: MIT
// File: synthesis.go
// Role: Event-aware scenario-matrix synthesis over an I/O automaton.
//
// Per traversed edge (input, output) the synthesizer builds a matrix:
//   - base: the dissected core of mode `output`, or the resources×resources
//     identity for a silent output;
//   - one column per pending event. The column of the processed event holds
//     the row maxima (B_c, B_e); every other pending event is conveyed with a
//     fresh row carrying 0 on the new diagonal cell;
//   - one event row when the mode emits, placed where the event sits in the
//     sorted pending multiset (A_e, plus B_e under processed columns).
//
// Determinism:
//   - Outgoing edges are visited in insertion order, pending events in
//     ascending order.

package smpls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/core"
	"github.com/katalvlaran/smpls/maxplus"
)

// Synthesis is the outcome of event-aware synthesis: a scenario FSM whose
// states mirror the I/O automaton and the table of synthesized matrices.
type Synthesis struct {
	FSM   *ScenarioFSM
	Table ScenarioTable
	// Resources is the resource count used for identities and bounded maxima.
	Resources int
	// Size is the largest row or column count among the synthesized matrices.
	Size int
}

// synthesizer carries the per-run context of one Synthesize call.
type synthesizer struct {
	ioa       *IOAutomaton
	rel       Relations
	dissected map[string]*DissectedMatrix
	resources int
	log       *zap.Logger

	fsm     *ScenarioFSM
	table   ScenarioTable
	visited map[core.EdgeID]bool
	biggest int
}

// prepare synthesizes every unvisited edge leaving id and recurses into its
// destination with a private copy of the pending events.
func (s *synthesizer) prepare(id core.StateID, pending pendingEvents) error {
	out, err := s.ioa.Outgoing(id)
	if err != nil {
		return err
	}
	srcLabel, err := s.ioa.Label(id)
	if err != nil {
		return err
	}

	for _, e := range out {
		if s.visited[e.ID] {
			continue
		}
		dstLabel, err := s.ioa.Label(e.To)
		if err != nil {
			return err
		}

		name := s.uniqueName(srcLabel, e.Label)
		src, _ := s.fsm.StateByLabel(srcLabel)
		dst, _ := s.fsm.StateByLabel(dstLabel)
		if _, err = s.fsm.AddEdge(src, name, dst); err != nil {
			return err
		}

		m, next, err := s.edgeMatrix(e.Label, pending)
		if err != nil {
			return fmt.Errorf("edge %d-%s->%d: %w", srcLabel, e.Label, dstLabel, err)
		}
		s.table[name] = m
		s.visited[e.ID] = true
		s.biggest = max(s.biggest, m.Rows(), m.Cols())

		s.log.Debug("synthesized scenario matrix",
			zap.String("scenario", name),
			zap.Int("rows", m.Rows()),
			zap.Int("cols", m.Cols()),
			zap.Int("pending", len(next)))

		if err = s.prepare(e.To, next); err != nil {
			return err
		}
	}

	return nil
}

// uniqueName returns "<src>,<input>,<output>", suffixed with "#k" when a
// parallel edge already took the plain name.
func (s *synthesizer) uniqueName(src int, l IOLabel) string {
	base := fmt.Sprintf("%d,%s", src, l)
	name := base
	for k := 1; ; k++ {
		if _, taken := s.table[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s#%d", base, k)
	}
}

// edgeMatrix builds the matrix of one edge and returns it together with the
// pending events after the edge.
func (s *synthesizer) edgeMatrix(l IOLabel, pending pendingEvents) (*maxplus.Matrix, pendingEvents, error) {
	eList := pending.clone()

	var (
		m          *maxplus.Matrix
		eventRow   *maxplus.Matrix
		emitted    string
		emitting   = -1
		processing = -1
		err        error
	)

	if l.Output != "" {
		dis, ok := s.dissected[l.Output]
		if !ok {
			return nil, nil, fmt.Errorf("scenario %q: %w", l.Output, ErrLookup)
		}
		m = dis.Core.Clone()
		if len(dis.EventRows) > 0 {
			// One emitted event per mode; further event rows are ignored.
			eventRow = dis.EventRows[0]
			if emitted, err = s.rel.EventByMode(l.Output); err != nil {
				return nil, nil, err
			}
			emitting = eList.upperBound(emitted)
		}
	} else if m, err = maxplus.Identity(s.resources); err != nil {
		return nil, nil, err
	}

	if l.Input != "" {
		ev, err := s.rel.EventByOutcome(l.Input)
		if err != nil {
			return nil, nil, err
		}
		processing = eList.indexOf(ev)
	}

	snapshot := eList.clone()
	for i, ev := range snapshot {
		m.AddCols(1)
		if i == processing {
			if err = s.processColumn(m); err != nil {
				return nil, nil, err
			}
			eList = eList.remove(ev)
		} else {
			m.AddRows(1)
			if err = m.Set(m.Rows()-1, m.Cols()-1, maxplus.Unit); err != nil {
				return nil, nil, err
			}
		}

		if eventRow != nil && (i == emitting || (i+1 == len(snapshot) && emitting == i+1)) {
			if err = s.appendEventRow(m, eventRow, true); err != nil {
				return nil, nil, err
			}
		}
	}

	if len(snapshot) == 0 && eventRow != nil {
		if err = s.appendEventRow(m, eventRow, false); err != nil {
			return nil, nil, err
		}
	}

	if emitted != "" {
		eList = eList.insert(emitted)
	}

	return m, eList, nil
}

// processColumn fills the last column of m for a processed event: the full
// row maximum on resource rows (B_c) and the maximum over the resource
// columns on every later row (B_e).
func (s *synthesizer) processColumn(m *maxplus.Matrix) error {
	last := m.Cols() - 1
	y := 0
	for ; y < s.resources && y < m.Rows(); y++ {
		v, err := m.RowMax(y)
		if err != nil {
			return err
		}
		if err = m.Set(y, last, v); err != nil {
			return err
		}
	}
	for ; y < m.Rows(); y++ {
		v, err := maxplus.RowMaxUntilCol(m, y, s.resources)
		if err != nil {
			return err
		}
		if err = m.Set(y, last, v); err != nil {
			return err
		}
	}

	return nil
}

// appendEventRow appends the mode's event row to m (A_e). With
// underProcessed set, columns beyond the event row that already hold a
// processed-event maximum receive the event row's resource maximum (B_e).
func (s *synthesizer) appendEventRow(m, eventRow *maxplus.Matrix, underProcessed bool) error {
	m.AddRows(1)
	r := m.Rows() - 1
	x := 0
	for ; x < eventRow.Cols() && x < m.Cols(); x++ {
		v, _ := eventRow.At(0, x)
		if err := m.Set(r, x, v); err != nil {
			return err
		}
	}
	if !underProcessed {
		return nil
	}

	be, err := maxplus.RowMaxUntilCol(eventRow, 0, min(s.resources, eventRow.Cols()))
	if err != nil {
		return err
	}
	for ; x < m.Cols(); x++ {
		c, err := maxplus.ColMaxUntilRow(m, x, min(s.resources, m.Rows()))
		if err != nil {
			return err
		}
		if !maxplus.IsMinusInfinity(c) {
			if err = m.Set(r, x, be); err != nil {
				return err
			}
		}
	}

	return nil
}
