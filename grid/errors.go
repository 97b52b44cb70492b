// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: " so wrapped errors stay greppable.
var (
	// ErrInvalidDimensions indicates that width or height is non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfBounds indicates that a column or row index is outside the grid.
	ErrOutOfBounds = errors.New("grid: index out of bounds")

	// ErrInvalidValue indicates a write of something other than 0 or 1 to a Bit cell.
	ErrInvalidValue = errors.New("grid: bit value must be 0 or 1")

	// ErrInvalidVisitor indicates that a traversal was requested with a nil visitor.
	ErrInvalidVisitor = errors.New("grid: visitor is nil")
)

// Method tags used in error wrappers.
const (
	ctxGet = "Get"
	ctxPut = "Put"
	ctxAt  = "At"
)

// cellErrorf wraps err with the receiver kind, method and coordinates,
// e.g. "Bit.Get(3,-1): grid: index out of bounds".
func cellErrorf(kind, method string, col, row int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, col, row, err)
}
