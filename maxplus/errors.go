// SPDX-License-Identifier: MIT

package maxplus

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "maxplus: " and callers
// match them with errors.Is; wrapping adds the call site and coordinates.
var (
	// ErrInvalidDimensions is returned for a negative shape or a ragged literal.
	ErrInvalidDimensions = errors.New("maxplus: invalid dimensions")

	// ErrOutOfRange indicates that an index or reduction limit lies outside the matrix.
	ErrOutOfRange = errors.New("maxplus: index out of range")
)

// matrixErrorf wraps err with the method name and the offending coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
