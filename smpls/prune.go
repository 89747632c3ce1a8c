package smpls

import "github.com/katalvlaran/smpls/core"

// RemoveDanglingStates deletes, until a fixpoint, every state of fsm that
// has no outgoing edge together with the edges entering it, and returns the
// number of states removed. Afterwards no state has an empty outgoing set,
// unless the machine became empty.
//
// Handles of removed states become invalid; callers must not keep them
// across the call.
//
// Complexity: O(P·(V+E)) for P passes.
func RemoveDanglingStates(fsm *ScenarioFSM) int {
	if fsm == nil {
		return 0
	}
	removed := 0
	for {
		dangling := danglingStates(fsm)
		if len(dangling) == 0 {
			return removed
		}
		for _, id := range dangling {
			if fsm.RemoveState(id) == nil {
				removed++
			}
		}
	}
}

func danglingStates(fsm *ScenarioFSM) []core.StateID {
	var out []core.StateID
	for _, id := range fsm.States() {
		if deg, err := fsm.OutDegree(id); err == nil && deg == 0 {
			out = append(out, id)
		}
	}

	return out
}
