// Package unblack removes black-edge artifacts from binary page scans.
//
// What
//
//   - Unblack clears every black pixel of a grid.Bit that is joined to the
//     image border by a chain of 4-connected black pixels.
//   - Black regions with no such chain (text, figures, specks inside the page)
//     are left exactly as they were.
//   - Diagonal neighbors are never followed.
//
// Algorithm
//
//	Seed: scan columns [0,W) on rows 0 and H-1, then rows [1,H-1) on
//	columns 0 and W-1, so each corner is examined once. Every black seed is
//	cleared and queued.
//	Expand: pop the front of a FIFO queue and examine its four neighbors
//	with the same bounds-check / is-black / clear-and-queue test.
//
// A pixel is cleared at the moment it is queued, and a cleared pixel never
// passes the is-black test again, so each pixel enters the queue at most once.
// The traversal is iterative; stack depth does not grow with region size.
//
// Options
//
//   - WithOnClear(fn): hook called for each cleared pixel, in clearing order.
//   - WithQueueHint(n): initial queue capacity (n ≥ 0).
//
// Errors
//
//   - ErrInvalidDimensions if the bitmap is nil or has a non-positive side.
//   - ErrOptionViolation   if an Option was given an invalid value.
//
// Complexity
//
//   - Time:   O(W×H)
//   - Memory: O(W×H) worst-case queue occupancy, released on return.
package unblack
