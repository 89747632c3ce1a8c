// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/smpls/core"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	id    core.StateID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable, E any] struct {
	graph *core.Graph[S, E]
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from every state in starts at once
// (a multi-source search), applying any number of functional Options.
// Returns ErrGraphNil or ErrStartStateNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[S comparable, E any](g *core.Graph[S, E], starts []core.StateID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.StateCount()
	w := &walker[S, E]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.StateID, 0, n),
			Depth:  make(map[core.StateID]int, n),
			Parent: make(map[core.StateID]core.StateID, n),
			Via:    make(map[core.StateID]core.EdgeID, n),
		},
	}
	for _, s := range starts {
		if _, err := g.Label(s); err != nil {
			return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, s)
		}
		if _, seen := w.res.Depth[s]; !seen {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

func (w *walker[S, E]) enqueue(id core.StateID, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen successor of item, in edge insertion order.
func (w *walker[S, E]) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	out, err := w.graph.Outgoing(item.id)
	if err != nil {
		return err
	}
	for _, e := range out {
		if !w.opts.FilterEdge(item.id, e.To) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Parent[e.To] = item.id
		w.res.Via[e.To] = e.ID
		w.enqueue(e.To, next)
	}

	return nil
}

// ShortestWord returns the edge labels along a shortest path from any
// initial state of g to target. Returns ErrUnreached when target cannot be
// reached from the initial states.
func ShortestWord[S comparable, E any](g *core.Graph[S, E], target core.StateID) ([]E, error) {
	res, err := BFS(g, g.Initial())
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, err
	}
	word := make([]E, 0, len(path))
	for _, eid := range path {
		e, err := g.Edge(eid)
		if err != nil {
			return nil, err
		}
		word = append(word, e.Label)
	}

	return word, nil
}
