// SPDX-License-Identifier: MIT

// Package maxplus provides the dense matrix type and the handful of
// reductions used to describe timed behaviour in the max-plus semiring.
//
// In max-plus algebra ⊕ is max and ⊗ is +. The additive identity is −∞
// ("no dependency") and the multiplicative identity is 0. A Matrix M of
// shape r×c maps c input tokens to r output tokens: M[i][j] is the delay
// between the availability of token j and the production of token i, or
// −∞ when token i does not depend on token j.
//
// Core API:
//
//	NewMatrix(rows, cols, fill) (*Matrix, error) // −∞, 0 or identity fill
//	FromRows(rows [][]float64) (*Matrix, error)  // literal construction
//	At / Set                                      // bounds-checked access
//	AddRows / AddCols                             // grow, new cells are −∞
//	Transpose / SubMatrix / SubMatrixRows / Clone // shape derivations
//	RowMax / RowMaxUntilCol / ColMaxUntilRow      // ⊕-reductions
//
// Storage is a flat row-major buffer (offset = i*cols + j). Zero-sized
// matrices are valid: a 0×c matrix appears while an event-emitting matrix
// is being grown one row at a time.
//
// Errors:
//
//	ErrInvalidDimensions – negative shape or ragged literal
//	ErrOutOfRange        – index or reduction limit outside the matrix
package maxplus
