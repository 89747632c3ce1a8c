// Package dfs implements depth-first traversal and cycle detection on the
// generic core.Graph used for every automaton in this module.
//
// What:
//
//   - DFS: explores as far as possible along each outgoing edge (insertion
//     order) before backtracking. Supports pre- and post-order hooks,
//     cancellation via context.Context, depth limiting, edge filtering and
//     forest traversal.
//   - Reachable: the set of states reachable from a list of roots.
//   - DetectCycles: lists the simple cycles closed by back edges, each in
//     canonical (minimal rotation) form.
//
// Why:
//   - Automata loaded from files may contain unreachable parts or loops;
//     both are reported before the expensive translations run.
//
// Complexity:
//
//   - DFS, Reachable: Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C*L²), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrStartStateNotFound  start handle is not a live state
//   - context.Canceled       traversal canceled via context
//   - hook errors            propagated from OnVisit or OnExit
package dfs
