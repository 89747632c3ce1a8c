package smpls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smpls/maxplus"
	"github.com/katalvlaran/smpls/smpls"
)

func TestDissect_CoreAndEventRows(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}})

	d, err := smpls.Dissect("mode", m)
	require.NoError(t, err)
	assert.Equal(t, "mode", d.Name)
	assert.Equal(t, 2, d.Resources())
	requireMatrix(t, [][]float64{{1, 2}, {3, 4}}, d.Core)
	require.Len(t, d.EventRows, 2)
	requireMatrix(t, [][]float64{{5, 6}}, d.EventRows[0])
	requireMatrix(t, [][]float64{{7, 8}}, d.EventRows[1])

	// core rows + event rows = max(rows, cols)
	assert.Equal(t, 4, d.Core.Rows()+len(d.EventRows))
}

func TestDissect_WideMatrixHasNoEventRows(t *testing.T) {
	d, err := smpls.Dissect("wide", mustMatrix(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{1}}, d.Core)
	assert.Empty(t, d.EventRows)
}

func TestDissectTable_ResourcesFromLastName(t *testing.T) {
	table := smpls.ScenarioTable{
		"a": mustMatrix(t, [][]float64{{1}}),
		"b": mustMatrix(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}),
	}
	dis, resources, err := smpls.DissectTable(table)
	require.NoError(t, err)
	assert.Len(t, dis, 2)
	assert.Equal(t, 2, resources)
	assert.Len(t, dis["b"].EventRows, 1)
}

func TestSquareTable(t *testing.T) {
	table := smpls.ScenarioTable{
		"x": mustMatrix(t, [][]float64{{1}, {2}}),
		"y": mustMatrix(t, [][]float64{{3}}),
		"z": mustMatrix(t, [][]float64{{1, 2, 3}}),
	}
	size := smpls.BiggestSize(table)
	require.Equal(t, 3, size)

	smpls.SquareTable(table, size)
	for _, m := range table {
		assert.Equal(t, size, m.Rows())
		assert.Equal(t, size, m.Cols())
	}
	requireMatrix(t, [][]float64{{1, inf, inf}, {2, inf, inf}, {inf, inf, inf}}, table["x"])

	v, err := table["y"].At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	v, _ = table["y"].At(2, 2)
	assert.True(t, maxplus.IsMinusInfinity(v))
}
