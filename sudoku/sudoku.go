// Package sudoku checks whether a 9×9 graymap holds a solved Sudoku.
//
// The board is a grid.Dense[int] read from a plain P2 graymap with
// maxval 9. A board is solved when every row, every column and every
// 3×3 box contains each digit 1..9 exactly once.
package sudoku

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pbmclean/grid"
	"github.com/katalvlaran/pbmclean/pbm"
)

// Board geometry.
const (
	Size    = 9
	BoxSize = 3
)

var (
	// ErrBadBoard is returned when the input is not a 9×9 graymap with maxval 9.
	ErrBadBoard = errors.New("sudoku: input is not a 9x9 graymap with maxval 9")

	// ErrUnsolved is returned when a row, column or box breaks the rules.
	ErrUnsolved = errors.New("sudoku: board is not solved")
)

// Read parses a board from a plain P2 graymap.
// Any pbm error is returned wrapped in ErrBadBoard.
func Read(r io.Reader) (*grid.Dense[int], error) {
	board, hdr, err := pbm.ReadGray(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadBoard, err)
	}
	if hdr.Width != Size || hdr.Height != Size || hdr.MaxVal != Size {
		return nil, fmt.Errorf("%w: got %dx%d maxval %d", ErrBadBoard, hdr.Width, hdr.Height, hdr.MaxVal)
	}

	return board, nil
}

// digits tracks which of 1..9 a unit has seen.
type digits [Size + 1]bool

// add records v and reports false if v is out of range or repeated.
func (s *digits) add(v int) bool {
	if v < 1 || v > Size || s[v] {
		return false
	}
	s[v] = true

	return true
}

// Validate returns nil when board is a solved Sudoku. Otherwise it returns
// ErrUnsolved naming the first failing unit; rows are checked before
// columns, columns before boxes.
func Validate(board *grid.Dense[int]) error {
	if board == nil || board.Width() != Size || board.Height() != Size {
		return ErrBadBoard
	}

	// Row-major traversal sees each row as one contiguous run of 9 cells.
	var seen digits
	bad := -1
	_ = board.MapRowMajor(func(col, row int, v *int) {
		if col == 0 {
			seen = digits{}
		}
		if bad < 0 && !seen.add(*v) {
			bad = row
		}
	})
	if bad >= 0 {
		return fmt.Errorf("%w: row %d", ErrUnsolved, bad)
	}

	_ = board.MapColMajor(func(col, row int, v *int) {
		if row == 0 {
			seen = digits{}
		}
		if bad < 0 && !seen.add(*v) {
			bad = col
		}
	})
	if bad >= 0 {
		return fmt.Errorf("%w: col %d", ErrUnsolved, bad)
	}

	for boxRow := 0; boxRow < BoxSize; boxRow++ {
		for boxCol := 0; boxCol < BoxSize; boxCol++ {
			if !boxOK(board, boxCol, boxRow) {
				return fmt.Errorf("%w: box (%d,%d)", ErrUnsolved, boxCol, boxRow)
			}
		}
	}

	return nil
}

// boxOK checks the 3×3 box whose top-left cell is (3·boxCol, 3·boxRow).
func boxOK(board *grid.Dense[int], boxCol, boxRow int) bool {
	var seen digits
	for r := 0; r < BoxSize; r++ {
		for c := 0; c < BoxSize; c++ {
			v, err := board.Get(boxCol*BoxSize+c, boxRow*BoxSize+r)
			if err != nil || !seen.add(v) {
				return false
			}
		}
	}

	return true
}
