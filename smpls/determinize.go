package smpls

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/core"
)

// Determinize writes a best-effort deterministic rendering of the I/O
// automaton to w and prunes the automaton in place while doing so.
//
// Only the first initial state is kept; the others are removed together
// with their edges. At each state a silent-input first edge is followed and
// every sibling is dropped; otherwise only the edges whose input processes
// the same event as the first edge are followed. Every followed edge yields
// one line "<src>-<input>,<output>-><dst>", suffixed with " f" when dst is
// final; final states are not expanded. States left unreachable are not
// removed.
//
// Returns ErrNotLoaded, ErrNoInitialState, ErrLookup for an input outside
// γ, or the first write error. On a walk error the lines written so far are
// flushed to w without the closing line.
func (m *EventModel) Determinize(w io.Writer) error {
	if m.ioa == nil {
		return fmt.Errorf("Determinize: I/O automaton: %w", ErrNotLoaded)
	}
	initial := m.ioa.Initial()
	if len(initial) == 0 {
		return fmt.Errorf("Determinize: %w", ErrNoInitialState)
	}
	for _, extra := range initial[1:] {
		if err := m.ioa.RemoveState(extra); err != nil {
			return err
		}
		m.cfg.logger.Warn("dropped extra initial state", zap.Int("handle", int(extra)))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "ioautomaton statespace{")
	d := &determinizer{ioa: m.ioa, rel: m.rel, out: bw, visited: make(map[core.StateID]bool)}
	if err := d.walk(initial[0]); err != nil {
		_ = bw.Flush()
		return err
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

type determinizer struct {
	ioa     *IOAutomaton
	rel     Relations
	out     *bufio.Writer
	visited map[core.StateID]bool
}

func (d *determinizer) walk(id core.StateID) error {
	if d.visited[id] {
		return nil
	}
	d.visited[id] = true

	out, err := d.ioa.Outgoing(id)
	if err != nil || len(out) == 0 {
		return err
	}

	first := out[0]
	if first.Label.Input == "" {
		for _, e := range out {
			if err = d.ioa.RemoveEdge(e.ID); err != nil {
				return err
			}
		}
		return d.follow(id, first)
	}

	ev, err := d.rel.EventByOutcome(first.Label.Input)
	if err != nil {
		return err
	}
	for _, e := range out {
		if err = d.ioa.RemoveEdge(e.ID); err != nil {
			return err
		}
		if e.Label.Input == "" {
			continue
		}
		other, err := d.rel.EventByOutcome(e.Label.Input)
		if err != nil {
			return err
		}
		if other != ev {
			continue
		}
		if err = d.follow(id, e); err != nil {
			return err
		}
	}

	return nil
}

// follow prints e and descends into its destination unless it is final.
func (d *determinizer) follow(src core.StateID, e core.Edge[IOLabel]) error {
	from, err := d.ioa.Label(src)
	if err != nil {
		return err
	}
	to, err := d.ioa.Label(e.To)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "%d-%s,%s->%d", from, e.Label.Input, e.Label.Output, to)
	if d.ioa.IsFinal(e.To) {
		fmt.Fprintln(d.out, " f")
		return nil
	}
	fmt.Fprintln(d.out)

	return d.walk(e.To)
}
