// Package dfs defines types and options for depth-first search traversal
// over core.Graph, including cancellation, pre-/post-order hooks, depth
// limiting, edge filtering, full-graph (forest) traversal, and diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/smpls/core"
)

// Visitation colors.
const (
	White = iota // White: the state has not been visited yet.
	Gray         // Gray: the state is on the recursion stack.
	Black        // Black: the state and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartStateNotFound indicates that the start handle is not a live state.
	ErrStartStateNotFound = errors.New("dfs: start state not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.StateID) error

	// OnExit, if non-nil, is invoked after all descendants were explored
	// (post-order), before the state is appended to Result.Order.
	OnExit func(id core.StateID) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the start.
	MaxDepth int

	// FilterEdge, if non-nil, is called with the source and target of each
	// outgoing edge; return false to skip it.
	FilterEdge func(from, to core.StateID) bool

	// FullTraversal restarts from every unvisited state (forest traversal).
	FullTraversal bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.StateID) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.StateID) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterEdge installs an edge filter; rejected edges are counted in SkippedEdges.
func WithFilterEdge(fn func(from, to core.StateID) bool) Option {
	return func(o *Options) { o.FilterEdge = fn }
}

// WithFullTraversal enables forest traversal over every state.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records states in the sequence they finished (post-order).
	Order []core.StateID

	// Depth maps each state to its distance (#edges) from its tree root.
	Depth map[core.StateID]int

	// Parent maps each state to the state it was discovered from.
	// Tree roots do not appear.
	Parent map[core.StateID]core.StateID

	// Visited flags which states were reached.
	Visited map[core.StateID]bool

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}
