package pbm

import (
	"errors"
	"fmt"
)

// Sentinel errors. All but ErrFormat wrap ErrFormat.
var (
	// ErrFormat is the umbrella for any malformed PNM input.
	ErrFormat = errors.New("pbm: malformed input")

	// ErrUnsupported is returned for PNM types other than P1 and P2.
	ErrUnsupported = fmt.Errorf("%w: unsupported PNM type", ErrFormat)

	// ErrNotBitmap is returned when a P1 bitmap was required.
	ErrNotBitmap = fmt.Errorf("%w: not a P1 bitmap", ErrFormat)

	// ErrNotGraymap is returned when a P2 graymap was required.
	ErrNotGraymap = fmt.Errorf("%w: not a P2 graymap", ErrFormat)

	// ErrBadDimensions is returned when width or height is not positive.
	ErrBadDimensions = fmt.Errorf("%w: width and height must be > 0", ErrFormat)

	// ErrPixelRange is returned when a pixel exceeds the header's maxval.
	ErrPixelRange = fmt.Errorf("%w: pixel value out of range", ErrFormat)

	// ErrTruncated is returned when the stream ends before width·height pixels.
	ErrTruncated = fmt.Errorf("%w: unexpected end of pixel data", ErrFormat)
)

// Type identifies a plain PNM variant by its magic number.
type Type int

const (
	// Bitmap is the plain PBM format, magic "P1".
	Bitmap Type = iota + 1
	// Graymap is the plain PGM format, magic "P2".
	Graymap
)

// String returns the magic number, e.g. "P1".
func (t Type) String() string {
	switch t {
	case Bitmap:
		return "P1"
	case Graymap:
		return "P2"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Header is the parsed preamble of a plain PNM stream.
type Header struct {
	Type          Type
	Width, Height int

	// MaxVal is the largest legal pixel value; always 1 for a Bitmap.
	MaxVal int
}

// maxNumber bounds any decimal in the stream so arithmetic on it cannot overflow.
const maxNumber = 1<<31 - 1

// maxGray is the largest maxval a Netpbm graymap may declare.
const maxGray = 65535
