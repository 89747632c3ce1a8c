// Package dfs implements depth-first search (single-source and forest) and
// cycle detection on core.Graph, independent of the state and edge label types.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smpls/core"
)

// walker encapsulates state during DFS.
type walker[S comparable, E any] struct {
	graph *core.Graph[S, E]
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every state, ignoring start. Edges are followed in insertion order.
// Returns the Result, or the error that aborted the traversal.
func DFS[S comparable, E any](g *core.Graph[S, E], start core.StateID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal {
		if _, err := g.Label(start); err != nil {
			return nil, fmt.Errorf("dfs: start %d: %w", start, ErrStartStateNotFound)
		}
	}

	states := g.States()
	res := &Result{
		Order:   make([]core.StateID, 0, len(states)),
		Depth:   make(map[core.StateID]int, len(states)),
		Parent:  make(map[core.StateID]core.StateID, len(states)),
		Visited: make(map[core.StateID]bool, len(states)),
	}
	w := &walker[S, E]{graph: g, opts: o, res: res}

	if o.FullTraversal {
		for _, v := range states {
			if !res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	res.SkippedEdges = w.opts.SkippedEdges

	return res, nil
}

// traverse visits id at depth, recursing into unvisited successors.
func (w *walker[S, E]) traverse(id core.StateID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	out, err := w.graph.Outgoing(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Outgoing(%d): %w", id, err)
	}

	for _, e := range out {
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(id, e.To) {
			w.opts.SkippedEdges++
			continue
		}
		if !w.res.Visited[e.To] {
			w.res.Parent[e.To] = id
			if err = w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

// Reachable returns the states reachable from the given roots (roots included),
// in ascending handle order. Unknown roots are ignored.
func Reachable[S comparable, E any](g *core.Graph[S, E], roots []core.StateID) ([]core.StateID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[core.StateID]bool)
	for _, r := range roots {
		if seen[r] {
			continue
		}
		res, err := DFS(g, r, WithFilterEdge(func(_, to core.StateID) bool { return !seen[to] }))
		if err != nil {
			if errors.Is(err, ErrStartStateNotFound) {
				continue
			}
			return nil, err
		}
		for id := range res.Visited {
			seen[id] = true
		}
	}

	out := make([]core.StateID, 0, len(seen))
	for _, id := range g.States() {
		if seen[id] {
			out = append(out, id)
		}
	}

	return out, nil
}
