package smpls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smpls/smpls"
)

func TestRelations_Lookups(t *testing.T) {
	rel := smpls.Relations{
		Gamma: []smpls.GammaPair{{Event: "e1", Outcome: "o1"}, {Event: "e2", Outcome: "o1"}},
		Sigma: []smpls.SigmaPair{{Mode: "m1", Event: "e1"}, {Mode: "m1", Event: "e2"}},
	}

	ev, err := rel.EventByOutcome("o1")
	require.NoError(t, err)
	assert.Equal(t, "e1", ev, "first match wins")

	ev, err = rel.EventByMode("m1")
	require.NoError(t, err)
	assert.Equal(t, "e1", ev)
	assert.Equal(t, []string{"e1", "e2"}, rel.EventsOfMode("m1"))
	assert.Nil(t, rel.EventsOfMode("m9"))

	assert.True(t, rel.Processes("e2", "o1"))
	assert.False(t, rel.Processes("e1", "o2"))

	_, err = rel.EventByOutcome("o9")
	assert.ErrorIs(t, err, smpls.ErrLookup)
	_, err = rel.EventByMode("m9")
	assert.ErrorIs(t, err, smpls.ErrLookup)
}

func TestScenarioTable(t *testing.T) {
	b := mustMatrix(t, [][]float64{{1, 2}})
	a := mustMatrix(t, [][]float64{{3}, {4}})
	table := smpls.ScenarioTable{"b": b, "a": a}

	assert.Equal(t, []string{"a", "b"}, table.Names())
	name, m, ok := table.First()
	require.True(t, ok)
	assert.Equal(t, "a", name)
	assert.Same(t, a, m)

	clone := table.Clone()
	clone.Transpose()
	assert.Equal(t, 1, clone["a"].Rows())
	assert.Equal(t, 2, table["a"].Rows(), "clone is deep")

	_, err := table.Get("zz")
	assert.ErrorIs(t, err, smpls.ErrLookup)

	_, _, ok = smpls.ScenarioTable{}.First()
	assert.False(t, ok)
}
