package smpls

import (
	"fmt"

	"github.com/katalvlaran/smpls/maxplus"
)

// DissectedMatrix is a scenario matrix split by role: the square
// resource-to-resource Core and the trailing 1×cols EventRows.
type DissectedMatrix struct {
	Name      string
	Core      *maxplus.Matrix
	EventRows []*maxplus.Matrix
}

// Resources returns the core size.
func (d *DissectedMatrix) Resources() int { return d.Core.Rows() }

// Dissect splits m (r×c) with resources = min(r, c): the leading
// resources×resources block becomes Core and, when r > resources, every
// remaining row becomes its own event row, in order.
func Dissect(name string, m *maxplus.Matrix) (*DissectedMatrix, error) {
	r, c := m.Shape()
	res := min(r, c)

	idx := make([]int, res)
	for i := range idx {
		idx[i] = i
	}
	core, err := m.SubMatrix(idx, idx)
	if err != nil {
		return nil, fmt.Errorf("dissect %q: %w", name, err)
	}

	d := &DissectedMatrix{Name: name, Core: core}
	if r > res {
		for i := res; i < max(r, c); i++ {
			row, err := m.SubMatrixRows([]int{i})
			if err != nil {
				return nil, fmt.Errorf("dissect %q: event row %d: %w", name, i, err)
			}
			d.EventRows = append(d.EventRows, row)
		}
	}

	return d, nil
}

// DissectTable dissects every matrix of t. The returned resource count is
// the one of the last scenario in name order.
func DissectTable(t ScenarioTable) (map[string]*DissectedMatrix, int, error) {
	out := make(map[string]*DissectedMatrix, len(t))
	resources := 0
	for _, name := range t.Names() {
		d, err := Dissect(name, t[name])
		if err != nil {
			return nil, 0, err
		}
		out[name] = d
		resources = d.Resources()
	}

	return out, resources, nil
}

// SquareTable pads every matrix of t with −∞ rows and columns up to
// size×size. Matrices already larger in a dimension keep it.
func SquareTable(t ScenarioTable, size int) {
	for _, m := range t {
		m.AddCols(size - m.Cols())
		m.AddRows(size - m.Rows())
	}
}

// BiggestSize returns the largest row or column count in t.
func BiggestSize(t ScenarioTable) int {
	size := 0
	for _, m := range t {
		size = max(size, m.Rows(), m.Cols())
	}

	return size
}
