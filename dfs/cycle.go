// Package dfs implements cycle detection for directed core.Graphs.
// DetectCycles enumerates the simple cycles closed by back edges using
// three-color marking, canonicalizes each one by its minimal rotation and
// returns them sorted for deterministic output. Self-loops count as cycles.
//
// Complexity:
//
//   - Time:   O(V + E + C·L²)  (C=#cycles found, L=avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/smpls/core"
)

// DetectCycles inspects g for cycles closed by DFS back edges.
// Returns (true, cycles, nil) if any are found, where every cycle is closed
// ([v0, ..., v0]); (false, nil, nil) if g is acyclic or nil.
func DetectCycles[S comparable, E any](g *core.Graph[S, E]) (bool, [][]core.StateID, error) {
	if g == nil {
		return false, nil, nil
	}

	states := g.States()
	color := make(map[core.StateID]int, len(states))
	path := make([]core.StateID, 0, len(states))
	seen := make(map[string]struct{})
	var cycles [][]core.StateID

	for _, v := range states {
		if color[v] == White {
			if err := visit(g, v, color, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return Compare(cycles[i], cycles[j]) < 0
	})
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// visit runs the colored DFS from id and records Gray→Gray back edges.
func visit[S comparable, E any](
	g *core.Graph[S, E],
	id core.StateID,
	color map[core.StateID]int,
	path *[]core.StateID,
	seen map[string]struct{},
	cycles *[][]core.StateID,
) error {
	color[id] = Gray
	*path = append(*path, id)

	out, err := g.Outgoing(id)
	if err != nil {
		return fmt.Errorf("Outgoing(%d): %w", id, err)
	}

	for _, e := range out {
		switch color[e.To] {
		case White:
			if err = visit(g, e.To, color, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			recordCycle(e.To, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	color[id] = Black

	return nil
}

// recordCycle extracts the cycle path[idx(start):]+start and keeps it if its
// canonical form is new.
func recordCycle(start core.StateID, path []core.StateID, seen map[string]struct{}, cycles *[][]core.StateID) {
	idx := IndexOf(path, start)
	base := append([]core.StateID(nil), path[idx:]...)

	rot := MinimalRotation(base)
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, ok := seen[sig]; !ok {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, closed)
	}
}
