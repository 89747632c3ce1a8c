package smpls

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/smpls/maxplus"
)

// ScenarioTable maps scenario names to their max-plus matrices.
type ScenarioTable map[string]*maxplus.Matrix

// Names returns the scenario names in ascending order.
func (t ScenarioTable) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Get returns the matrix of scenario name, or ErrLookup.
func (t ScenarioTable) Get(name string) (*maxplus.Matrix, error) {
	m, ok := t[name]
	if !ok || m == nil {
		return nil, fmt.Errorf("scenario %q: %w", name, ErrLookup)
	}

	return m, nil
}

// First returns the entry with the smallest name; ok is false for an empty table.
func (t ScenarioTable) First() (name string, m *maxplus.Matrix, ok bool) {
	names := t.Names()
	if len(names) == 0 {
		return "", nil, false
	}

	return names[0], t[names[0]], true
}

// Clone deep-copies every matrix.
func (t ScenarioTable) Clone() ScenarioTable {
	out := make(ScenarioTable, len(t))
	for n, m := range t {
		out[n] = m.Clone()
	}

	return out
}

// Transpose replaces every matrix by its transpose, for tables produced
// with the opposite application convention.
func (t ScenarioTable) Transpose() {
	for n, m := range t {
		t[n] = m.Transpose()
	}
}
