// Package pbm reads and writes the plain-text ("ASCII") members of the
// Netpbm family that pbmclean works with.
//
//   - P1 (bitmap): one '0' (white) or '1' (black) per pixel; whitespace
//     between pixels is optional.
//   - P2 (graymap): whitespace-separated decimals in [0, maxval].
//
// A '#' starts a comment that runs to the end of the line, anywhere
// whitespace is allowed. Binary P4/P5 rasters are rejected with
// ErrUnsupported.
//
// Reader yields pixels one at a time in row-major order; ReadBit and
// ReadGray wrap it to fill a grid.Bit or grid.Dense[int]. WriteBit emits
// the P1 layout pbmclean produces:
//
//	P1
//	<width> <height>
//	<width space-separated 0/1 tokens>   × height lines
//
// Open and Create add zstd framing when the path ends in ".zst"; the
// raster inside the frame is still plain text.
//
// Every format error wraps ErrFormat, so errors.Is(err, ErrFormat) tells
// malformed input apart from I/O failures.
package pbm
