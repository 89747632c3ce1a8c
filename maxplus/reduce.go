package maxplus

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// RowMaxUntilCol returns max{ M[row][j] : 0 ≤ j < colLimit }, or −∞ when
// colLimit is 0.
//
// Returns ErrOutOfRange if row is not a valid row index or colLimit is
// negative or exceeds the column count.
func RowMaxUntilCol(m *Matrix, row, colLimit int) (float64, error) {
	if row < 0 || row >= m.r || colLimit < 0 || colLimit > m.c {
		return 0, fmt.Errorf("RowMaxUntilCol(row=%d, limit=%d) on %d×%d: %w",
			row, colLimit, m.r, m.c, ErrOutOfRange)
	}

	return maxOf(m.data[row*m.c : row*m.c+colLimit]), nil
}

// ColMaxUntilRow returns max{ M[i][col] : 0 ≤ i < rowLimit }, or −∞ when
// rowLimit is 0.
//
// Returns ErrOutOfRange if col is not a valid column index or rowLimit is
// negative or exceeds the row count.
func ColMaxUntilRow(m *Matrix, col, rowLimit int) (float64, error) {
	if col < 0 || col >= m.c || rowLimit < 0 || rowLimit > m.r {
		return 0, fmt.Errorf("ColMaxUntilRow(col=%d, limit=%d) on %d×%d: %w",
			col, rowLimit, m.r, m.c, ErrOutOfRange)
	}
	best := MinusInfinity
	for i := 0; i < rowLimit; i++ {
		best = Max(best, m.data[i*m.c+col])
	}

	return best, nil
}

// maxOf is the ⊕-sum of s; floats.Max panics on empty input.
func maxOf(s []float64) float64 {
	if len(s) == 0 {
		return MinusInfinity
	}

	return floats.Max(s)
}
