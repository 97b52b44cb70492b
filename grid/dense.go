// SPDX-License-Identifier: MIT

package grid

import "unsafe"

const kindDense = "Dense"

// Dense is a width×height grid of T stored row-major in one flat slice.
// Elements are handed out by address (At), so T may be a struct that callers
// update in place.
type Dense[T any] struct {
	w, h int
	data []T // len == w*h, offset = row*w + col
}

// NewDense allocates a width×height grid with every element set to the zero
// value of T. Returns ErrInvalidDimensions if width or height is ≤ 0.
// Complexity: O(W×H) time and memory.
func NewDense[T any](width, height int) (*Dense[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// Width returns the number of columns.
func (d *Dense[T]) Width() int { return d.w }

// Height returns the number of rows.
func (d *Dense[T]) Height() int { return d.h }

// ElemSize returns the size in bytes of one element. It is fixed by T.
func (d *Dense[T]) ElemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// InBounds reports whether (col,row) lies inside the grid.
func (d *Dense[T]) InBounds(col, row int) bool {
	return col >= 0 && col < d.w && row >= 0 && row < d.h
}

// At returns the address of the element at (col,row), or ErrOutOfBounds.
// The pointer stays valid for as long as the grid is reachable.
// Complexity: O(1).
func (d *Dense[T]) At(col, row int) (*T, error) {
	if !d.InBounds(col, row) {
		return nil, cellErrorf(kindDense, ctxAt, col, row, ErrOutOfBounds)
	}

	return &d.data[row*d.w+col], nil
}

// Get returns a copy of the element at (col,row), or ErrOutOfBounds.
func (d *Dense[T]) Get(col, row int) (T, error) {
	if !d.InBounds(col, row) {
		var zero T
		return zero, cellErrorf(kindDense, ctxGet, col, row, ErrOutOfBounds)
	}

	return d.data[row*d.w+col], nil
}

// Put stores v at (col,row) and returns the element it replaced.
func (d *Dense[T]) Put(col, row int, v T) (T, error) {
	if !d.InBounds(col, row) {
		var zero T
		return zero, cellErrorf(kindDense, ctxPut, col, row, ErrOutOfBounds)
	}
	i := row*d.w + col
	prev := d.data[i]
	d.data[i] = v

	return prev, nil
}

// MapRowMajor calls visit with each element's address, all columns of row 0
// first. Returns ErrInvalidVisitor if visit is nil.
func (d *Dense[T]) MapRowMajor(visit func(col, row int, elem *T)) error {
	if visit == nil {
		return ErrInvalidVisitor
	}
	for row := 0; row < d.h; row++ {
		for col := 0; col < d.w; col++ {
			visit(col, row, &d.data[row*d.w+col])
		}
	}

	return nil
}

// MapColMajor calls visit with each element's address, all rows of column 0
// first. Returns ErrInvalidVisitor if visit is nil.
func (d *Dense[T]) MapColMajor(visit func(col, row int, elem *T)) error {
	if visit == nil {
		return ErrInvalidVisitor
	}
	for col := 0; col < d.w; col++ {
		for row := 0; row < d.h; row++ {
			visit(col, row, &d.data[row*d.w+col])
		}
	}

	return nil
}
