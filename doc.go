// Package pbmclean removes the black borders that scanners leave around
// page images, working on plain-text PBM (P1) bitmaps.
//
// What's inside:
//
//	grid/     fixed-size 2D containers: packed Bit and generic Dense[T],
//	          bounds-checked Get/Put/At, row- and column-major traversal
//	unblack/  border-seeded, iterative 4-connected flood fill that clears
//	          every black pixel joined to the image edge
//	pbm/      plain P1/P2 reader, P1 writer, transparent .zst framing
//	batch/    clean many files concurrently, one grid per file
//	sudoku/   row/column/box checker on a 9×9 Dense[int] graymap
//	cmd/      the unblackedges and sudoku command-line tools
//
// Quick ASCII example (1 = black):
//
//	1 1 1 1 1        0 0 0 0 0
//	1 0 0 0 1        0 0 0 0 0
//	1 0 1 0 1   →    0 0 1 0 0
//	1 0 0 0 1        0 0 0 0 0
//	1 1 1 1 1        0 0 0 0 0
//
// The frame touches the border and is removed; the centre pixel has no
// black path to the border and survives.
//
//	go install github.com/katalvlaran/pbmclean/cmd/unblackedges@latest
package pbmclean
