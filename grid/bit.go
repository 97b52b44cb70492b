// SPDX-License-Identifier: MIT

package grid

import (
	"math/bits"
	"slices"
	"strings"
)

// Word layout: cell index i lives in words[i>>wordShift] at bit i&wordMask.
const (
	wordShift = 6
	wordBits  = 1 << wordShift
	wordMask  = wordBits - 1
)

const kindBit = "Bit"

// Bit is a width×height grid of 0/1 cells packed into 64-bit words.
//   - w,h hold the dimensions (both > 0 for any grid built by NewBit).
//   - words holds ceil(w*h/64) words; bits past w*h are always zero.
type Bit struct {
	w, h  int
	words []uint64
}

// BitVisitor is called by MapRowMajor and MapColMajor once per cell with the
// cell's coordinates and its value at visit time.
type BitVisitor func(col, row, value int)

// NewBit allocates a width×height bitmap with every cell set to 0.
// Returns ErrInvalidDimensions if width or height is ≤ 0.
// Complexity: O(W×H/64) time and memory.
func NewBit(width, height int) (*Bit, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height

	return &Bit{
		w:     width,
		h:     height,
		words: make([]uint64, (n+wordMask)>>wordShift),
	}, nil
}

// Width returns the number of columns.
func (b *Bit) Width() int { return b.w }

// Height returns the number of rows.
func (b *Bit) Height() int { return b.h }

// InBounds reports whether (col,row) lies inside the bitmap.
// Complexity: O(1).
func (b *Bit) InBounds(col, row int) bool {
	return col >= 0 && col < b.w && row >= 0 && row < b.h
}

// index maps (col,row) to its flat position row*w + col.
func (b *Bit) index(col, row int) int {
	return row*b.w + col
}

// bit returns the value stored at flat index i. Caller guarantees bounds.
func (b *Bit) bit(i int) int {
	return int(b.words[i>>wordShift] >> uint(i&wordMask) & 1)
}

// Get returns the value (0 or 1) at (col,row), or ErrOutOfBounds.
// Complexity: O(1).
func (b *Bit) Get(col, row int) (int, error) {
	if !b.InBounds(col, row) {
		return 0, cellErrorf(kindBit, ctxGet, col, row, ErrOutOfBounds)
	}

	return b.bit(b.index(col, row)), nil
}

// Put stores value at (col,row) and returns the value it replaced.
// Returns ErrOutOfBounds for bad coordinates and ErrInvalidValue when value
// is neither 0 nor 1; the bitmap is unchanged on error.
// The returned previous value makes Put a test-and-set primitive.
// Complexity: O(1).
func (b *Bit) Put(col, row, value int) (int, error) {
	if !b.InBounds(col, row) {
		return 0, cellErrorf(kindBit, ctxPut, col, row, ErrOutOfBounds)
	}
	if value != 0 && value != 1 {
		return 0, cellErrorf(kindBit, ctxPut, col, row, ErrInvalidValue)
	}
	i := b.index(col, row)
	w, mask := i>>wordShift, uint64(1)<<uint(i&wordMask)
	prev := b.bit(i)
	if value == 1 {
		b.words[w] |= mask
	} else {
		b.words[w] &^= mask
	}

	return prev, nil
}

// Count returns the number of cells set to 1.
// Complexity: O(W×H/64).
func (b *Bit) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Clone returns a deep copy that shares no storage with b.
func (b *Bit) Clone() *Bit {
	return &Bit{w: b.w, h: b.h, words: slices.Clone(b.words)}
}

// Equal reports whether b and other have the same shape and the same cells.
func (b *Bit) Equal(other *Bit) bool {
	if b == nil || other == nil {
		return b == other
	}

	return b.w == other.w && b.h == other.h && slices.Equal(b.words, other.words)
}

// MapRowMajor calls visit for every cell, all columns of row 0 first,
// then row 1, and so on. Returns ErrInvalidVisitor if visit is nil.
// Values are read at visit time, so writes to cells not yet visited are seen.
func (b *Bit) MapRowMajor(visit BitVisitor) error {
	if visit == nil {
		return ErrInvalidVisitor
	}
	for row := 0; row < b.h; row++ {
		for col := 0; col < b.w; col++ {
			visit(col, row, b.bit(b.index(col, row)))
		}
	}

	return nil
}

// MapColMajor calls visit for every cell, all rows of column 0 first,
// then column 1, and so on. Returns ErrInvalidVisitor if visit is nil.
func (b *Bit) MapColMajor(visit BitVisitor) error {
	if visit == nil {
		return ErrInvalidVisitor
	}
	for col := 0; col < b.w; col++ {
		for row := 0; row < b.h; row++ {
			visit(col, row, b.bit(b.index(col, row)))
		}
	}

	return nil
}

// String renders the bitmap as one line of '0'/'1' characters per row.
func (b *Bit) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for row := 0; row < b.h; row++ {
		for col := 0; col < b.w; col++ {
			sb.WriteByte(byte('0' + b.bit(b.index(col, row))))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
