package pbm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/pbmclean/grid"
)

// WriteBit writes bm to w as a plain P1 bitmap: the header "P1", then
// "<width> <height>", then one line per row of space-separated 0/1 tokens.
// Output is buffered and flushed before WriteBit returns.
// Returns grid.ErrInvalidDimensions for a nil bitmap.
func WriteBit(w io.Writer, bm *grid.Bit) error {
	if bm == nil {
		return fmt.Errorf("pbm: %w", grid.ErrInvalidDimensions)
	}
	bw := bufio.NewWriter(w)
	width := bm.Width()
	if _, err := fmt.Fprintf(bw, "P1\n%d %d\n", width, bm.Height()); err != nil {
		return err
	}
	// bufio.Writer errors are sticky; Flush reports the first one.
	err := bm.MapRowMajor(func(col, _, v int) {
		_ = bw.WriteByte(byte('0' + v))
		if col == width-1 {
			_ = bw.WriteByte('\n')
		} else {
			_ = bw.WriteByte(' ')
		}
	})
	if err != nil {
		return err
	}

	return bw.Flush()
}
