package smpls_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/smpls/maxplus"
	"github.com/katalvlaran/smpls/smpls"
)

var inf = maxplus.MinusInfinity

type ioEdge struct {
	from, to int
	in, out  string
}

type fsmEdge struct {
	from, to int
	scenario string
}

// newIOA builds an I/O automaton; states are created in the order listed.
func newIOA(t *testing.T, states, initial, final []int, edges []ioEdge) *smpls.IOAutomaton {
	t.Helper()
	g := smpls.NewIOAutomaton()
	for _, s := range states {
		g.AddState(s)
	}
	for _, e := range edges {
		src, err := g.StateByLabel(e.from)
		require.NoError(t, err)
		dst, err := g.StateByLabel(e.to)
		require.NoError(t, err)
		_, err = g.AddEdge(src, smpls.IOLabel{Input: e.in, Output: e.out}, dst)
		require.NoError(t, err)
	}
	for _, s := range initial {
		id, err := g.StateByLabel(s)
		require.NoError(t, err)
		require.NoError(t, g.AddInitial(id))
	}
	for _, s := range final {
		id, err := g.StateByLabel(s)
		require.NoError(t, err)
		require.NoError(t, g.AddFinal(id))
	}

	return g
}

// newFSM builds a scenario FSM.
func newFSM(t *testing.T, states, initial, final []int, edges []fsmEdge) *smpls.ScenarioFSM {
	t.Helper()
	g := smpls.NewScenarioFSM()
	for _, s := range states {
		g.AddState(s)
	}
	for _, e := range edges {
		src, err := g.StateByLabel(e.from)
		require.NoError(t, err)
		dst, err := g.StateByLabel(e.to)
		require.NoError(t, err)
		_, err = g.AddEdge(src, e.scenario, dst)
		require.NoError(t, err)
	}
	for _, s := range initial {
		id, _ := g.StateByLabel(s)
		require.NoError(t, g.AddInitial(id))
	}
	for _, s := range final {
		id, _ := g.StateByLabel(s)
		require.NoError(t, g.AddFinal(id))
	}

	return g
}

func mustMatrix(t *testing.T, rows [][]float64) *maxplus.Matrix {
	t.Helper()
	m, err := maxplus.FromRows(rows)
	require.NoError(t, err)

	return m
}

// requireMatrix asserts m has exactly the given cells.
func requireMatrix(t *testing.T, want [][]float64, m *maxplus.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Truef(t, mustMatrix(t, want).Equal(m), "want %v, got\n%v", want, m)
}

// observedLogger returns a logger recording Warn and above.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	c, logs := observer.New(zapcore.WarnLevel)

	return zap.New(c), logs
}

// emitProcessModel is S0 -ε/m1-> S1 [-o1/ε-> S2] with σ={(m1,e1)}, γ={(e1,o1)}.
// With withProcessing false S1 is final and e1 is never processed.
func emitProcessModel(t *testing.T, withProcessing bool) *smpls.EventModel {
	t.Helper()
	rel := smpls.Relations{Sigma: []smpls.SigmaPair{{Mode: "m1", Event: "e1"}}}
	table := smpls.ScenarioTable{"m1": mustMatrix(t, [][]float64{{2}, {5}})}

	var ioa *smpls.IOAutomaton
	if withProcessing {
		rel.Gamma = []smpls.GammaPair{{Event: "e1", Outcome: "o1"}}
		ioa = newIOA(t, []int{0, 1, 2}, []int{0}, []int{2}, []ioEdge{
			{0, 1, "", "m1"},
			{1, 2, "o1", ""},
		})
	} else {
		ioa = newIOA(t, []int{0, 1}, []int{0}, []int{1}, []ioEdge{
			{0, 1, "", "m1"},
		})
	}

	return smpls.NewEventModel(ioa, table, rel, smpls.WithResources(1))
}
