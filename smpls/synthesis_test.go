package smpls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/smpls"
)

func TestSynthesize_EmitOnly(t *testing.T) {
	m := emitProcessModel(t, false)

	syn, err := m.Synthesize()
	require.NoError(t, err)
	require.Len(t, syn.Table, 1)
	// 1×1 core plus the event row of e1.
	requireMatrix(t, [][]float64{{2}, {5}}, syn.Table["0,,m1"])
	assert.Equal(t, 2, syn.Size)
	assert.Equal(t, 1, syn.Resources)

	assert.Equal(t, 2, syn.FSM.StateCount())
	require.Len(t, syn.FSM.Edges(), 1)
	assert.Equal(t, "0,,m1", syn.FSM.Edges()[0].Label)
	assert.Len(t, syn.FSM.Initial(), 1)
	assert.Len(t, syn.FSM.Final(), 1)
	assert.Same(t, syn, m.Synthesized())

	// The mode table is not touched.
	requireMatrix(t, [][]float64{{2}, {5}}, m.Table()["m1"])
}

func TestSynthesize_ProcessingColumn(t *testing.T) {
	m := emitProcessModel(t, true)

	syn, err := m.Synthesize()
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{2}, {5}}, syn.Table["0,,m1"])
	// Identity base, one column for the processed e1 holding the row maximum.
	requireMatrix(t, [][]float64{{0, 0}}, syn.Table["1,o1,"])
}

func TestSynthesize_ConveyAndEmitAfterPending(t *testing.T) {
	rel := smpls.Relations{
		Gamma: []smpls.GammaPair{{Event: "eA", Outcome: "oA"}, {Event: "eB", Outcome: "oB"}},
		Sigma: []smpls.SigmaPair{{Mode: "mA", Event: "eA"}, {Mode: "mB", Event: "eB"}},
	}
	table := smpls.ScenarioTable{
		"mA": mustMatrix(t, [][]float64{{1}, {10}}),
		"mB": mustMatrix(t, [][]float64{{2}, {20}}),
	}
	ioa := newIOA(t, []int{0, 1, 2, 3, 4}, []int{0}, []int{4}, []ioEdge{
		{0, 1, "", "mA"},
		{1, 2, "", "mB"},
		{2, 3, "oB", ""},
		{3, 4, "oA", ""},
	})
	m := smpls.NewEventModel(ioa, table, rel)

	syn, err := m.Synthesize()
	require.NoError(t, err)
	assert.Equal(t, 1, syn.Resources)
	assert.Equal(t, 3, syn.Size)

	requireMatrix(t, [][]float64{{1}, {10}}, syn.Table["0,,mA"])
	// eA is conveyed (0 on the new diagonal), eB's row goes below it.
	requireMatrix(t, [][]float64{
		{2, inf},
		{inf, 0},
		{20, inf},
	}, syn.Table["1,,mB"])
	// eA conveyed, eB processed.
	requireMatrix(t, [][]float64{
		{0, inf, 0},
		{inf, 0, inf},
	}, syn.Table["2,oB,"])
	requireMatrix(t, [][]float64{{0, 0}}, syn.Table["3,oA,"])

	report, err := m.IsConsistent()
	require.NoError(t, err)
	assert.True(t, report.Consistent, report.Message)
}

func TestSynthesize_ProcessAndEmitOnSameEdge(t *testing.T) {
	rel := smpls.Relations{
		Gamma: []smpls.GammaPair{{Event: "eA", Outcome: "oA"}, {Event: "eB", Outcome: "oB"}},
		Sigma: []smpls.SigmaPair{{Mode: "mA", Event: "eA"}, {Mode: "mB", Event: "eB"}},
	}
	table := smpls.ScenarioTable{
		"mA": mustMatrix(t, [][]float64{{1}, {10}}),
		"mB": mustMatrix(t, [][]float64{{2}, {20}}),
	}
	ioa := newIOA(t, []int{0, 1, 2, 3}, []int{0}, []int{3}, []ioEdge{
		{0, 1, "", "mA"},
		{1, 2, "oA", "mB"},
		{2, 3, "oB", ""},
	})

	syn, err := smpls.NewEventModel(ioa, table, rel).Synthesize()
	require.NoError(t, err)
	// B_c = 2 for the processed eA; the eB row repeats its resource maximum
	// under that column.
	requireMatrix(t, [][]float64{
		{2, 2},
		{20, 20},
	}, syn.Table["1,oA,mB"])
	requireMatrix(t, [][]float64{{0, 0}}, syn.Table["2,oB,"])
}

func TestSynthesize_ParallelEdgesGetUniqueNames(t *testing.T) {
	ioa := newIOA(t, []int{0, 1}, []int{0}, []int{1}, []ioEdge{
		{0, 1, "", "m"},
		{0, 1, "", "m"},
	})
	table := smpls.ScenarioTable{"m": mustMatrix(t, [][]float64{{4}})}

	syn, err := smpls.NewEventModel(ioa, table, smpls.Relations{}).Synthesize()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0,,m", "0,,m#1"}, syn.Table.Names())
	assert.Equal(t, 2, syn.FSM.EdgeCount())
}

func TestSynthesize_Errors(t *testing.T) {
	cases := []struct {
		name  string
		edge  ioEdge
		table smpls.ScenarioTable
		rel   smpls.Relations
	}{
		{
			name:  "unknown mode",
			edge:  ioEdge{0, 1, "", "nope"},
			table: smpls.ScenarioTable{},
		},
		{
			name:  "outcome outside gamma",
			edge:  ioEdge{0, 1, "o9", ""},
			table: smpls.ScenarioTable{"m": mustMatrix(t, [][]float64{{1}})},
		},
		{
			name:  "event rows without sigma",
			edge:  ioEdge{0, 1, "", "m"},
			table: smpls.ScenarioTable{"m": mustMatrix(t, [][]float64{{1}, {2}})},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ioa := newIOA(t, []int{0, 1}, []int{0}, []int{1}, []ioEdge{tc.edge})
			_, err := smpls.NewEventModel(ioa, tc.table, tc.rel).Synthesize()
			assert.ErrorIs(t, err, smpls.ErrLookup)
		})
	}
}

func TestEventModel_NotLoaded(t *testing.T) {
	m := smpls.NewEventModel(nil, nil, smpls.Relations{})

	_, err := m.Synthesize()
	assert.ErrorIs(t, err, smpls.ErrNotLoaded)
	_, err = m.ConvertToMaxPlusAutomaton()
	assert.ErrorIs(t, err, smpls.ErrNotLoaded)
	_, err = m.IsConsistent()
	assert.ErrorIs(t, err, smpls.ErrNotLoaded)
	assert.ErrorIs(t, m.Determinize(nil), smpls.ErrNotLoaded)

	m.SetIOAutomaton(smpls.NewIOAutomaton())
	_, err = m.Synthesize()
	assert.NoError(t, err)
}

func TestSynthesize_WarnsOnResourceMismatchAndCycles(t *testing.T) {
	ioa := newIOA(t, []int{0, 1}, []int{0}, nil, []ioEdge{
		{0, 1, "", "m"},
		{1, 0, "", "m"},
	})
	table := smpls.ScenarioTable{"m": mustMatrix(t, [][]float64{{1}})}
	log, logs := observedLogger()

	syn, err := smpls.NewEventModel(ioa, table, smpls.Relations{},
		smpls.WithResources(2), smpls.WithLogger(log)).Synthesize()
	require.NoError(t, err)
	assert.Equal(t, 2, syn.Resources)
	assert.Len(t, syn.Table, 2)
	assert.Equal(t, 1, logs.FilterField(zap.Int("configured", 2)).Len())
	assert.Equal(t, 1, logs.FilterField(zap.Int("cycles", 1)).Len())
}

func TestConvertToMaxPlusAutomaton_Events(t *testing.T) {
	m := emitProcessModel(t, true)

	mpa, err := m.ConvertToMaxPlusAutomaton()
	require.NoError(t, err)

	syn := m.Synthesized()
	for _, name := range syn.Table.Names() {
		assert.Equal(t, 2, syn.Table[name].Rows(), name)
		assert.Equal(t, 2, syn.Table[name].Cols(), name)
	}
	requireMatrix(t, [][]float64{{2, inf}, {5, inf}}, syn.Table["0,,m1"])
	requireMatrix(t, [][]float64{{0, 0}, {inf, inf}}, syn.Table["1,o1,"])

	assert.Equal(t, 6, mpa.StateCount())
	assert.Equal(t, map[[2]smpls.TokenState]smpls.WeightedScenario{
		{{ID: 0, Token: 0}, {ID: 1, Token: 0}}: {Delay: 2, Scenario: "0,,m1"},
		{{ID: 0, Token: 0}, {ID: 1, Token: 1}}: {Delay: 5, Scenario: "0,,m1"},
		{{ID: 1, Token: 0}, {ID: 2, Token: 0}}: {Delay: 0, Scenario: "1,o1,"},
		{{ID: 1, Token: 1}, {ID: 2, Token: 0}}: {Delay: 0, Scenario: "1,o1,"},
	}, edgeSet(t, mpa))
	assert.Len(t, mpa.Initial(), 2)
	assert.Len(t, mpa.Final(), 2)
}
