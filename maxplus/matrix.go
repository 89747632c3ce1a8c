// SPDX-License-Identifier: MIT
// File: matrix.go
// Role: Dense max-plus matrix: construction, access, growth and shape derivations.
// Determinism:
//   - Every traversal is row-major; no map iteration.
// Concurrency:
//   - A Matrix is not safe for concurrent mutation; Clone before sharing.

package maxplus

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Method tags used in wrapped errors.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRowMax = "RowMax"
	ctxSub    = "SubMatrix"
)

// Fill selects the initial content of a freshly allocated matrix.
type Fill int

const (
	// FillMinusInfinity sets every cell to −∞ (the max-plus zero matrix).
	FillMinusInfinity Fill = iota
	// FillZero sets every cell to 0.
	FillZero
	// FillIdentity sets the diagonal to 0 and every other cell to −∞.
	FillIdentity
)

// Matrix is a dense row-major max-plus matrix.
//   - r,c hold dimensions; either may be zero.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Matrix struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix allocates an r×c matrix initialized according to fill.
// Returns ErrInvalidDimensions if rows or cols is negative.
// Complexity: O(r*c).
func NewMatrix(rows, cols int, fill Fill) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	m := &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
	switch fill {
	case FillZero:
		// make() already zero-filled the buffer
	case FillIdentity:
		m.fill(MinusInfinity)
		for i := 0; i < rows && i < cols; i++ {
			m.data[i*cols+i] = Unit
		}
	default:
		m.fill(MinusInfinity)
	}

	return m, nil
}

// Identity returns the n×n max-plus identity (0 on the diagonal, −∞ elsewhere).
func Identity(n int) (*Matrix, error) {
	return NewMatrix(n, n, FillIdentity)
}

// FromRows builds a matrix from a row literal. All rows must have the same length.
// Returns ErrInvalidDimensions for ragged input.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	m := &Matrix{r: len(rows), c: cols, data: make([]float64, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w",
				i, len(row), cols, ErrInvalidDimensions)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// indexOf validates (row, col) and returns the flat offset.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// −∞ is a legal value; it is how a cell is cleared.
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j, or ErrOutOfRange.
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// AddRows appends n rows of −∞ at the bottom. n <= 0 is a no-op.
// Complexity: O(n*c).
func (m *Matrix) AddRows(n int) {
	for k := 0; k < n*m.c; k++ {
		m.data = append(m.data, MinusInfinity)
	}
	if n > 0 {
		m.r += n
	}
}

// AddCols appends n columns of −∞ on the right. n <= 0 is a no-op.
// Complexity: O(r*(c+n)) since the row-major buffer is re-laid.
func (m *Matrix) AddCols(n int) {
	if n <= 0 {
		return
	}
	nc := m.c + n
	buf := make([]float64, m.r*nc)
	for i := 0; i < m.r; i++ {
		copy(buf[i*nc:], m.data[i*m.c:(i+1)*m.c])
		for j := m.c; j < nc; j++ {
			buf[i*nc+j] = MinusInfinity
		}
	}
	m.c, m.data = nc, buf
}

// Transpose returns a new c×r matrix with T[j][i] = M[i][j].
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// SubMatrixRows returns a new matrix made of the listed rows, all columns kept,
// in the order given. Returns ErrOutOfRange if an index is invalid.
func (m *Matrix) SubMatrixRows(rows []int) (*Matrix, error) {
	cols := make([]int, m.c)
	for j := range cols {
		cols[j] = j
	}

	return m.SubMatrix(rows, cols)
}

// SubMatrix returns a new matrix with the cells at the listed row and column
// indices, preserving the given order. Returns ErrOutOfRange if an index is invalid.
// Complexity: O(len(rows)*len(cols)).
func (m *Matrix) SubMatrix(rows, cols []int) (*Matrix, error) {
	out := &Matrix{r: len(rows), c: len(cols), data: make([]float64, 0, len(rows)*len(cols))}
	for _, i := range rows {
		for _, j := range cols {
			off, err := m.indexOf(i, j)
			if err != nil {
				return nil, matrixErrorf(ctxSub, i, j, err)
			}
			out.data = append(out.data, m.data[off])
		}
	}

	return out, nil
}

// RowMax returns the ⊕-sum (maximum) of row i, −∞ for an empty row.
// Returns ErrOutOfRange if i is invalid.
func (m *Matrix) RowMax(i int) (float64, error) {
	if i < 0 || i >= m.r {
		return 0, matrixErrorf(ctxRowMax, i, 0, ErrOutOfRange)
	}

	return maxOf(m.data[i*m.c : (i+1)*m.c]), nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Equal reports whether both matrices have the same shape and identical cells.
// −∞ equals −∞.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if v != o.data[k] {
			return false
		}
	}

	return true
}

// Data returns a copy of the row-major buffer.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders the matrix through gonum's formatter; −∞ prints as -Inf.
func (m *Matrix) String() string {
	if m.r == 0 || m.c == 0 {
		return fmt.Sprintf("[%d×%d]", m.r, m.c)
	}
	d := mat.NewDense(m.r, m.c, m.Data())

	return fmt.Sprintf("%v", mat.Formatted(d, mat.Squeeze()))
}

func (m *Matrix) fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}
