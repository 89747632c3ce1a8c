// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/smpls/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStateNotFound is returned when the start handle is absent.
	ErrStartStateNotFound = errors.New("bfs: start state not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by Result.PathTo for a state the search never reached.
	ErrUnreached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a state is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.StateID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(from, to core.StateID) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.StateID, int) error { return nil },
		FilterEdge: func(_, _ core.StateID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.StateID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(from, to core.StateID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: distance in edges from the nearest start state.
//   - Parent: predecessor of each non-start state in the BFS tree.
//   - Via: the edge through which each non-start state was first reached.
type Result struct {
	Order  []core.StateID
	Depth  map[core.StateID]int
	Parent map[core.StateID]core.StateID
	Via    map[core.StateID]core.EdgeID
}

// PathTo returns the edges of a shortest path from a start state to dest,
// in walking order; empty when dest is a start state. Returns ErrUnreached
// if dest was not reached.
func (r *Result) PathTo(dest core.StateID) ([]core.EdgeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrUnreached)
	}
	path := make([]core.EdgeID, r.Depth[dest])
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = r.Via[dest]
		dest = r.Parent[dest]
	}

	return path, nil
}
