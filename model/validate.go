package model

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Validate checks the document and returns every problem found, combined
// with multierr; each wraps ErrInvalidModel.
func (d *Document) Validate() error {
	var err error
	invalid := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf(format+": %w", append(args, ErrInvalidModel)...))
	}

	if d.FSM == nil && d.IOA == nil {
		invalid("neither fsm nor ioa given")
	}
	if d.Resources != nil && *d.Resources < 0 {
		invalid("resources: negative count %d", *d.Resources)
	}

	names := make([]string, 0, len(d.Matrices))
	for name := range d.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows := d.Matrices[name]
		if name == "" {
			invalid("matrices: empty scenario name")
		}
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				invalid("matrices[%s]: row %d has %d cells, want %d", name, i, len(row), len(rows[0]))
			}
		}
	}

	if d.FSM != nil {
		err = multierr.Append(err, d.FSM.validate("fsm", func(e Edge) error {
			if e.Input != "" || e.Output != "" {
				return fmt.Errorf("edge %d->%d carries actions: %w", e.From, e.To, ErrInvalidModel)
			}
			if _, ok := d.Matrices[e.Scenario]; !ok {
				return fmt.Errorf("edge %d->%d: unknown scenario %q: %w", e.From, e.To, e.Scenario, ErrInvalidModel)
			}
			return nil
		}))
	}
	if d.IOA != nil {
		err = multierr.Append(err, d.IOA.validate("ioa", func(e Edge) error {
			if e.Scenario != "" {
				return fmt.Errorf("edge %d->%d carries a scenario: %w", e.From, e.To, ErrInvalidModel)
			}
			return nil
		}))
	}

	for i, g := range d.Gamma {
		if g.Event == "" || g.Outcome == "" {
			invalid("gamma[%d]: event and outcome are required", i)
		}
	}
	for i, s := range d.Sigma {
		if s.Mode == "" || s.Event == "" {
			invalid("sigma[%d]: mode and event are required", i)
		}
	}

	return err
}

// validate checks state uniqueness, edge endpoints and, through check, the edge payload.
func (a *Automaton) validate(section string, check func(Edge) error) error {
	var err error
	ids := make(map[int]bool, len(a.States))
	for _, s := range a.States {
		if ids[s.ID] {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate state %d: %w", section, s.ID, ErrInvalidModel))
		}
		ids[s.ID] = true
	}
	for _, e := range a.Edges {
		if !ids[e.From] || !ids[e.To] {
			err = multierr.Append(err, fmt.Errorf("%s: edge %d->%d: unknown state: %w", section, e.From, e.To, ErrInvalidModel))
			continue
		}
		if cerr := check(e); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", section, cerr))
		}
	}

	return err
}
