package pbm_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/pbmclean/pbm"
	"github.com/stretchr/testify/require"
)

// TestReader_HeaderAndPixels parses a commented P1 stream pixel by pixel.
func TestReader_HeaderAndPixels(t *testing.T) {
	const src = "P1\n# scanner output\n3 # width\n2\n1 0 1\n0 1 0\n"
	r, err := pbm.NewReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, pbm.Header{Type: pbm.Bitmap, Width: 3, Height: 2, MaxVal: 1}, r.Header())

	w, h := r.Dimensions()
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)

	var got []int
	for {
		v, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 0, 1, 0, 1, 0}, got)
}

// TestReader_PackedBitmap accepts P1 pixels with no separators.
func TestReader_PackedBitmap(t *testing.T) {
	bm, err := pbm.ReadBit(strings.NewReader("P1 4 2\n0110\n10#x\n01"))
	require.NoError(t, err)
	require.Equal(t, "0110\n1001\n", bm.String())
}

// TestReader_Graymap reads a P2 stream with a maxval.
func TestReader_Graymap(t *testing.T) {
	d, hdr, err := pbm.ReadGray(strings.NewReader("P2\n3 2\n9\n1 2 3\n7 8 9\n"))
	require.NoError(t, err)
	require.Equal(t, pbm.Graymap, hdr.Type)
	require.Equal(t, 9, hdr.MaxVal)

	v, err := d.Get(2, 1)
	require.NoError(t, err)
	require.Equal(t, 9, v)
	v, err = d.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

// TestReader_Errors checks that malformed inputs map to the right sentinel,
// and that every one of them is also an ErrFormat.
func TestReader_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"Empty", "", pbm.ErrFormat},
		{"BadMagic", "Q1\n1 1\n1\n", pbm.ErrFormat},
		{"MagicRunOn", "P12 1\n1\n", pbm.ErrFormat},
		{"RawBitmap", "P4\n1 1\n\x80", pbm.ErrUnsupported},
		{"Pixmap", "P3\n1 1\n255\n0 0 0\n", pbm.ErrUnsupported},
		{"ZeroWidth", "P1\n0 3\n", pbm.ErrBadDimensions},
		{"ZeroHeight", "P1\n3 0\n", pbm.ErrBadDimensions},
		{"NegativeWidth", "P1\n-3 3\n", pbm.ErrFormat},
		{"MissingHeight", "P1\n3", pbm.ErrFormat},
		{"GarbageWidth", "P1\n3x 3\n", pbm.ErrFormat},
		{"Huge", "P1\n99999999999 1\n", pbm.ErrFormat},
		{"Truncated", "P1\n2 2\n1 0 1\n", pbm.ErrTruncated},
		{"BitOutOfRange", "P1\n2 1\n1 2\n", pbm.ErrPixelRange},
		{"BitGarbage", "P1\n2 1\n1 x\n", pbm.ErrFormat},
		{"GrayAsBitmap", "P2\n1 1\n9\n5\n", pbm.ErrNotBitmap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pbm.ReadBit(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, pbm.ErrFormat)
		})
	}
}

// TestReadGray_Errors covers graymap-specific failures.
func TestReadGray_Errors(t *testing.T) {
	_, _, err := pbm.ReadGray(strings.NewReader("P1\n1 1\n1\n"))
	require.ErrorIs(t, err, pbm.ErrNotGraymap)

	_, _, err = pbm.ReadGray(strings.NewReader("P2\n2 1\n9\n3 10\n"))
	require.ErrorIs(t, err, pbm.ErrPixelRange)

	_, _, err = pbm.ReadGray(strings.NewReader("P2\n1 1\n0\n0\n"))
	require.ErrorIs(t, err, pbm.ErrFormat)

	_, _, err = pbm.ReadGray(strings.NewReader("P2\n2 2\n9\n1 2 3"))
	require.ErrorIs(t, err, pbm.ErrTruncated)
}

// TestTypeString checks the magic-number rendering.
func TestTypeString(t *testing.T) {
	require.Equal(t, "P1", pbm.Bitmap.String())
	require.Equal(t, "P2", pbm.Graymap.String())
	require.Equal(t, "Type(9)", pbm.Type(9).String())
}
