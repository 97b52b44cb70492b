package unblack

import (
	"github.com/katalvlaran/pbmclean/grid"
)

// neighborOffsets lists the 4-connected neighbors: W, E, N, S.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// filler encapsulates the mutable state of one Unblack call.
type filler struct {
	bm      *grid.Bit
	opts    Options
	queue   []point
	cleared int
}

// Unblack clears, in place, every black pixel of bm that is 4-connected to
// the border through black pixels, and returns how many pixels it cleared.
// Returns ErrInvalidDimensions for a nil or empty bitmap and
// ErrOptionViolation for bad options; bm is untouched in both cases.
// Complexity: O(W×H) time and memory.
func Unblack(bm *grid.Bit, opts ...Option) (int, error) {
	if bm == nil || bm.Width() <= 0 || bm.Height() <= 0 {
		return 0, ErrInvalidDimensions
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	w, h := bm.Width(), bm.Height()
	hint := o.QueueHint
	if hint == 0 {
		hint = 2 * (w + h)
	}
	f := &filler{bm: bm, opts: o, queue: make([]point, 0, hint)}

	f.seed()
	f.expand()

	return f.cleared, nil
}

// seed tests every border pixel once. Top and bottom rows cover the corners,
// so the side columns run over rows [1, h-1).
func (f *filler) seed() {
	w, h := f.bm.Width(), f.bm.Height()
	for col := 0; col < w; col++ {
		f.test(col, 0)
		f.test(col, h-1)
	}
	for row := 1; row < h-1; row++ {
		f.test(0, row)
		f.test(w-1, row)
	}
}

// expand drains the queue, testing the four neighbors of each entry.
func (f *filler) expand() {
	for qi := 0; qi < len(f.queue); qi++ {
		p := f.queue[qi]
		for _, d := range neighborOffsets {
			f.test(p.col+d[0], p.row+d[1])
		}
	}
	f.queue = nil
}

// test clears (col,row) and queues it when it is in bounds and black.
// Put's previous value is the is-black check, so clearing and testing are
// one step and a pixel can never be queued twice.
func (f *filler) test(col, row int) {
	if !f.bm.InBounds(col, row) {
		return
	}
	// In bounds and writing 0, so Put cannot fail.
	prev, _ := f.bm.Put(col, row, 0)
	if prev != 1 {
		return
	}
	f.cleared++
	f.opts.OnClear(col, row)
	f.queue = append(f.queue, point{col: col, row: row})
}
