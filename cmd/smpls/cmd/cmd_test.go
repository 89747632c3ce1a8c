package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smpls/model"
	"github.com/katalvlaran/smpls/smpls"
)

const eventModel = `
matrices:
  m1: [[2], [5]]
ioa:
  states:
    - {id: 0, initial: true}
    - {id: 1}
    - {id: 2, final: true}
  edges:
    - {from: 0, to: 1, output: m1}
    - {from: 1, to: 2, input: o1}
gamma:
  - {event: e1, outcome: o1}
sigma:
  - {mode: m1, event: e1}
`

const inconsistentModel = `
matrices:
  m1: [[2], [5]]
ioa:
  states:
    - {id: 0, initial: true}
    - {id: 1, final: true}
  edges:
    - {from: 0, to: 1, output: m1}
sigma:
  - {mode: m1, event: e1}
`

const fsmModel = `
matrices:
  a: [[1, -inf], [3, 4]]
fsm:
  states:
    - {id: 0, initial: true}
    - {id: 1, final: true}
    - {id: 2}
  edges:
    - {from: 0, to: 1, scenario: a}
    - {from: 1, to: 0, scenario: a}
    - {from: 1, to: 2, scenario: a}
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// run executes the root command with a clean flag state.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	modelPath, logLevel, format, outputPath = "", "error", "yaml", ""
	pruneFirst, transpose = false, false
	renderWhat, rankDir = "mpa", "LR"

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()

	return buf.String(), err
}

func TestConvert_EventModel(t *testing.T) {
	path := writeModel(t, eventModel)
	out, err := run(t, "convert", "--model", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "state (0,0) initial")
	assert.Contains(t, out, "(0,0) -2/0,,m1-> (1,0)")
}

func TestConvert_PrunedFSMToFile(t *testing.T) {
	path := writeModel(t, fsmModel)
	dst := filepath.Join(t.TempDir(), "mpa.yaml")
	_, err := run(t, "convert", "-m", path, "--prune", "-o", dst)
	require.NoError(t, err)

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "scenario: a")
	assert.NotContains(t, string(raw), "(2,")
}

func TestConvert_UnknownFormat(t *testing.T) {
	path := writeModel(t, fsmModel)
	_, err := run(t, "convert", "-m", path, "--format", "toml")
	assert.Error(t, err)
}

func TestCommands_RequireModel(t *testing.T) {
	_, err := run(t, "check")
	assert.ErrorIs(t, err, smpls.ErrNotLoaded)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "-m", writeModel(t, eventModel))
	require.NoError(t, err)
	assert.Equal(t, "consistent\n", out)

	out, err = run(t, "check", "-m", writeModel(t, inconsistentModel))
	assert.ErrorIs(t, err, errInconsistent)
	assert.Contains(t, out, "Event e1 has not been processed by the end of the word.")
}

func TestDeterminize(t *testing.T) {
	out, err := run(t, "determinize", "-m", writeModel(t, eventModel))
	require.NoError(t, err)
	assert.Equal(t, "ioautomaton statespace{\n0-,m1->1\n1-o1,->2 f\n}\n", out)
}

func TestSynthesize_WritesConvertibleModel(t *testing.T) {
	out, err := run(t, "synthesize", "-m", writeModel(t, eventModel))
	require.NoError(t, err)

	doc, err := model.Parse(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Len(t, doc.Matrices, 2)
	for name, rows := range doc.Matrices {
		require.Len(t, rows, 2, name)
		assert.Len(t, rows[0], 2, name)
	}
	require.NotNil(t, doc.FSM)
	assert.Len(t, doc.FSM.Edges, 2)

	converted, err := run(t, "convert", "-m", writeModel(t, out), "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, converted, "(0,0) -5/0,,m1-> (1,1)")
	assert.Contains(t, converted, "(1,1) -0/1,o1,-> (2,0)")

	// An event row left pending must still fit the destination tokens.
	out, err = run(t, "synthesize", "-m", writeModel(t, inconsistentModel))
	require.NoError(t, err)
	converted, err = run(t, "convert", "-m", writeModel(t, out), "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, converted, "(0,0) -5/0,,m1-> (1,1)")
}

func TestPrune(t *testing.T) {
	out, err := run(t, "prune", "-m", writeModel(t, fsmModel))
	require.NoError(t, err)

	doc, err := model.Parse(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Len(t, doc.FSM.States, 2)
	assert.Len(t, doc.FSM.Edges, 2)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "-m", writeModel(t, fsmModel))
	require.NoError(t, err)
	assert.Contains(t, out, "fsm: 3 states, 3 edges, 1 initial, 1 final")
	assert.Contains(t, out, "reachable: [0 1 2]")
	assert.Contains(t, out, "cycle: [0 1 0]")
	assert.Contains(t, out, "final 1: shortest word [a]")

	out, err = run(t, "info", "-m", writeModel(t, eventModel))
	require.NoError(t, err)
	assert.Contains(t, out, "final 2: shortest word [,m1 o1,]")
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "-m", writeModel(t, eventModel), "--what", "ioa", "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")

	_, err = run(t, "render", "-m", writeModel(t, eventModel), "--what", "nope", "--format", "dot")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := newLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, l)
	}
	_, err := newLogger("loud")
	assert.Error(t, err)
}
