package model

import (
	"fmt"

	"github.com/katalvlaran/smpls/core"
	"github.com/katalvlaran/smpls/maxplus"
	"github.com/katalvlaran/smpls/smpls"
)

// Table builds the scenario table from the matrices section.
func (d *Document) Table() (smpls.ScenarioTable, error) {
	t := make(smpls.ScenarioTable, len(d.Matrices))
	for name, rows := range d.Matrices {
		lit := make([][]float64, len(rows))
		for i, row := range rows {
			lit[i] = make([]float64, len(row))
			for j, v := range row {
				lit[i][j] = float64(v)
			}
		}
		m, err := maxplus.FromRows(lit)
		if err != nil {
			return nil, fmt.Errorf("matrices[%s]: %w", name, err)
		}
		t[name] = m
	}

	return t, nil
}

// Relations returns γ and σ.
func (d *Document) Relations() smpls.Relations {
	var rel smpls.Relations
	for _, g := range d.Gamma {
		rel.Gamma = append(rel.Gamma, smpls.GammaPair{Event: g.Event, Outcome: g.Outcome})
	}
	for _, s := range d.Sigma {
		rel.Sigma = append(rel.Sigma, smpls.SigmaPair{Mode: s.Mode, Event: s.Event})
	}

	return rel
}

// Options returns the smpls options implied by the document.
func (d *Document) Options() []smpls.Option {
	if d.Resources == nil {
		return nil
	}

	return []smpls.Option{smpls.WithResources(*d.Resources)}
}

// ScenarioFSM builds the fsm section.
func (d *Document) ScenarioFSM() (*smpls.ScenarioFSM, error) {
	if d.FSM == nil {
		return nil, fmt.Errorf("fsm: %w", smpls.ErrNotLoaded)
	}
	g := smpls.NewScenarioFSM()
	err := populate(g, d.FSM, func(e Edge) string { return e.Scenario })

	return g, err
}

// IOAutomaton builds the ioa section.
func (d *Document) IOAutomaton() (*smpls.IOAutomaton, error) {
	if d.IOA == nil {
		return nil, fmt.Errorf("ioa: %w", smpls.ErrNotLoaded)
	}
	g := smpls.NewIOAutomaton()
	err := populate(g, d.IOA, func(e Edge) smpls.IOLabel {
		return smpls.IOLabel{Input: e.Input, Output: e.Output}
	})

	return g, err
}

// SMPLS builds a plain system from the fsm and matrices sections.
func (d *Document) SMPLS(opts ...smpls.Option) (*smpls.SMPLS, error) {
	fsm, err := d.ScenarioFSM()
	if err != nil {
		return nil, err
	}
	t, err := d.Table()
	if err != nil {
		return nil, err
	}

	return smpls.New(fsm, t, append(d.Options(), opts...)...), nil
}

// EventModel builds an event model from the ioa, matrices and relation sections.
func (d *Document) EventModel(opts ...smpls.Option) (*smpls.EventModel, error) {
	ioa, err := d.IOAutomaton()
	if err != nil {
		return nil, err
	}
	t, err := d.Table()
	if err != nil {
		return nil, err
	}

	return smpls.NewEventModel(ioa, t, d.Relations(), append(d.Options(), opts...)...), nil
}

func populate[E any](g *core.Graph[int, E], a *Automaton, label func(Edge) E) error {
	for _, s := range a.States {
		id := g.AddState(s.ID)
		if s.Initial {
			_ = g.AddInitial(id)
		}
		if s.Final {
			_ = g.AddFinal(id)
		}
	}
	for _, e := range a.Edges {
		src, err := g.StateByLabel(e.From)
		if err != nil {
			return err
		}
		dst, err := g.StateByLabel(e.To)
		if err != nil {
			return err
		}
		if _, err = g.AddEdge(src, label(e), dst); err != nil {
			return err
		}
	}

	return nil
}

// FromScenarioFSM describes fsm as an fsm section, states and edges in
// handle order.
func FromScenarioFSM(fsm *smpls.ScenarioFSM) *Automaton {
	return describe(fsm, func(l string) Edge { return Edge{Scenario: l} })
}

// FromIOAutomaton describes ioa as an ioa section.
func FromIOAutomaton(ioa *smpls.IOAutomaton) *Automaton {
	return describe(ioa, func(l smpls.IOLabel) Edge { return Edge{Input: l.Input, Output: l.Output} })
}

// FromTable describes a scenario table as a matrices section.
func FromTable(t smpls.ScenarioTable) map[string][][]Value {
	out := make(map[string][][]Value, len(t))
	for name, m := range t {
		rows := make([][]Value, m.Rows())
		for i := range rows {
			row, _ := m.Row(i)
			rows[i] = make([]Value, len(row))
			for j, v := range row {
				rows[i][j] = Value(v)
			}
		}
		out[name] = rows
	}

	return out
}

func describe[E any](g *core.Graph[int, E], edge func(E) Edge) *Automaton {
	a := &Automaton{}
	for _, id := range g.States() {
		l, _ := g.Label(id)
		a.States = append(a.States, State{ID: l, Initial: g.IsInitial(id), Final: g.IsFinal(id)})
	}
	for _, e := range g.Edges() {
		from, _ := g.Label(e.From)
		to, _ := g.Label(e.To)
		out := edge(e.Label)
		out.From, out.To = from, to
		a.Edges = append(a.Edges, out)
	}

	return a
}

// FromMaxPlusAutomaton describes mpa for output.
func FromMaxPlusAutomaton(mpa *smpls.MaxPlusAutomaton) *MaxPlus {
	out := &MaxPlus{}
	for _, id := range mpa.States() {
		l, _ := mpa.Label(id)
		out.States = append(out.States, TokenState{
			ID: l.ID, Token: l.Token, Initial: mpa.IsInitial(id), Final: mpa.IsFinal(id),
		})
	}
	for _, e := range mpa.Edges() {
		from, _ := mpa.Label(e.From)
		to, _ := mpa.Label(e.To)
		out.Edges = append(out.Edges, WeightedEdge{
			From: from.String(), To: to.String(), Delay: Value(e.Label.Delay), Scenario: e.Label.Scenario,
		})
	}

	return out
}
