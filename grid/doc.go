// SPDX-License-Identifier: MIT

// Package grid provides fixed-size, bounds-checked two-dimensional containers
// addressed by (col, row).
//
// What:
//
//   - Bit stores 0/1 cells packed 64 per machine word.
//   - Dense[T] stores any fixed-size element type and hands out addresses.
//   - Both map (col, row) to the flat index row*width + col, a bijection onto
//     [0, width*height).
//   - Both offer row-major and column-major traversal with a caller-supplied
//     visitor.
//
// Why:
//
//   - Scanned page images are binary; packing keeps a 5000×7000 page under 5 MiB.
//   - Individual bits have no address, so Bit exposes value-level Get/Put
//     while Dense[T] exposes At returning *T.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0 at construction.
//   - ErrOutOfBounds: col ∉ [0,width) or row ∉ [0,height).
//   - ErrInvalidValue: Bit.Put with a value other than 0 or 1.
//   - ErrInvalidVisitor: MapRowMajor/MapColMajor called with a nil visitor.
//
// Accessors never panic on bad input; errors carry the method name and the
// coordinates and wrap the sentinel, so errors.Is works at every call site.
//
// Complexity:
//
//   - NewBit / NewDense: O(W×H) zero-init.
//   - Get / Put / At: O(1).
//   - MapRowMajor / MapColMajor: O(W×H).
//
// Grids are not safe for concurrent mutation. Distinct grids never share
// storage.
package grid
