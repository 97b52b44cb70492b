package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/pbmclean/grid"
)

// Reader is a pull parser over a plain PNM stream.
// NewReader consumes the header; Next returns one pixel per call.
type Reader struct {
	br        *bufio.Reader
	hdr       Header
	remaining int // pixels not yet returned
}

// NewReader parses the PNM header from r.
// Returns ErrUnsupported for magic numbers other than P1/P2,
// ErrBadDimensions for non-positive sizes, and ErrFormat for anything
// else that does not parse.
func NewReader(r io.Reader) (*Reader, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	pr := &Reader{br: br}
	if err := pr.readHeader(); err != nil {
		return nil, err
	}

	return pr, nil
}

// Header returns the parsed header.
func (r *Reader) Header() Header { return r.hdr }

// Dimensions returns the width and height declared by the header.
func (r *Reader) Dimensions() (width, height int) {
	return r.hdr.Width, r.hdr.Height
}

// readHeader consumes magic, width, height and (for P2) maxval.
func (r *Reader) readHeader() error {
	var magic [2]byte
	if _, err := io.ReadFull(r.br, magic[:]); err != nil {
		return fmt.Errorf("%w: missing magic number", ErrFormat)
	}
	if magic[0] != 'P' {
		return fmt.Errorf("%w: bad magic %q", ErrFormat, magic[:])
	}
	switch magic[1] {
	case '1':
		r.hdr.Type = Bitmap
	case '2':
		r.hdr.Type = Graymap
	case '3', '4', '5', '6', '7':
		return fmt.Errorf("%w: P%c", ErrUnsupported, magic[1])
	default:
		return fmt.Errorf("%w: bad magic %q", ErrFormat, magic[:])
	}
	// The magic number must be followed by whitespace or a comment.
	if next, err := r.br.Peek(1); err == nil && !isSpace(next[0]) && next[0] != '#' {
		return fmt.Errorf("%w: bad magic %q", ErrFormat, append(magic[:], next[0]))
	}

	w, err := r.readHeaderInt("width")
	if err != nil {
		return err
	}
	h, err := r.readHeaderInt("height")
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadDimensions, w, h)
	}
	if w > math.MaxInt/h {
		return fmt.Errorf("%w: %dx%d overflows", ErrBadDimensions, w, h)
	}
	r.hdr.Width, r.hdr.Height = w, h

	r.hdr.MaxVal = 1
	if r.hdr.Type == Graymap {
		mv, err := r.readHeaderInt("maxval")
		if err != nil {
			return err
		}
		if mv <= 0 || mv > maxGray {
			return fmt.Errorf("%w: maxval %d", ErrFormat, mv)
		}
		r.hdr.MaxVal = mv
	}
	r.remaining = w * h

	return nil
}

// readHeaderInt reads one decimal header field, naming it in errors.
func (r *Reader) readHeaderInt(field string) (int, error) {
	n, err := r.readInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: missing %s", ErrFormat, field)
		}
		return 0, fmt.Errorf("%s: %w", field, err)
	}

	return n, nil
}

// skipSpace advances past whitespace and '#' comments.
// Returns io.EOF if the stream ends first.
func (r *Reader) skipSpace() error {
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case c == '#':
			if _, err := r.br.ReadBytes('\n'); err != nil {
				return err
			}
		case isSpace(c):
		default:
			return r.br.UnreadByte()
		}
	}
}

// readInt reads an unsigned decimal after optional whitespace.
// Returns io.EOF if no token remains, ErrFormat if the token is not a number.
func (r *Reader) readInt() (int, error) {
	if err := r.skipSpace(); err != nil {
		return 0, err
	}
	n, digits := 0, 0
	for {
		c, err := r.br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if !isSpace(c) && c != '#' {
				return 0, fmt.Errorf("%w: unexpected byte %q", ErrFormat, c)
			}
			if err := r.br.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
		n = n*10 + int(c-'0')
		digits++
		if n > maxNumber {
			return 0, fmt.Errorf("%w: number too large", ErrFormat)
		}
	}
	if digits == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Next returns the next pixel in row-major order.
// After width·height pixels it returns io.EOF. A stream that ends early
// yields ErrTruncated; a value above MaxVal yields ErrPixelRange.
func (r *Reader) Next() (int, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	var (
		v   int
		err error
	)
	if r.hdr.Type == Bitmap {
		v, err = r.nextBit()
	} else {
		v, err = r.readInt()
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrTruncated
		}
		return 0, err
	}
	if v > r.hdr.MaxVal {
		return 0, fmt.Errorf("%w: %d > %d", ErrPixelRange, v, r.hdr.MaxVal)
	}
	r.remaining--

	return v, nil
}

// nextBit reads one P1 pixel; P1 pixels need no separator.
func (r *Reader) nextBit() (int, error) {
	if err := r.skipSpace(); err != nil {
		return 0, err
	}
	c, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case c == '0' || c == '1':
		return int(c - '0'), nil
	case c >= '2' && c <= '9':
		return 0, fmt.Errorf("%w: %q", ErrPixelRange, c)
	default:
		return 0, fmt.Errorf("%w: unexpected byte %q in bitmap", ErrFormat, c)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// ReadBit reads a complete P1 bitmap from r.
// Returns ErrNotBitmap for a valid graymap and the Reader's errors otherwise.
func ReadBit(r io.Reader) (*grid.Bit, error) {
	pr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	if pr.hdr.Type != Bitmap {
		return nil, fmt.Errorf("%w: got %s", ErrNotBitmap, pr.hdr.Type)
	}
	w, h := pr.Dimensions()
	bm, err := grid.NewBit(w, h)
	if err != nil {
		return nil, err
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v, err := pr.Next()
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", col, row, err)
			}
			if _, err := bm.Put(col, row, v); err != nil {
				return nil, err
			}
		}
	}

	return bm, nil
}

// ReadGray reads a complete P2 graymap from r into a Dense[int].
// Returns ErrNotGraymap for a valid bitmap and the Reader's errors otherwise.
func ReadGray(r io.Reader) (*grid.Dense[int], Header, error) {
	pr, err := NewReader(r)
	if err != nil {
		return nil, Header{}, err
	}
	hdr := pr.Header()
	if hdr.Type != Graymap {
		return nil, hdr, fmt.Errorf("%w: got %s", ErrNotGraymap, hdr.Type)
	}
	d, err := grid.NewDense[int](hdr.Width, hdr.Height)
	if err != nil {
		return nil, hdr, err
	}
	var perr error
	_ = d.MapRowMajor(func(col, row int, elem *int) {
		if perr != nil {
			return
		}
		v, err := pr.Next()
		if err != nil {
			perr = fmt.Errorf("pixel (%d,%d): %w", col, row, err)
			return
		}
		*elem = v
	})
	if perr != nil {
		return nil, hdr, perr
	}

	return d, hdr, nil
}
