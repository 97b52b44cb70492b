package pbm_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pbmclean/grid"
	"github.com/katalvlaran/pbmclean/pbm"
	"github.com/stretchr/testify/require"
)

// TestWriteBit checks the exact P1 layout.
func TestWriteBit(t *testing.T) {
	bm, err := grid.NewBit(3, 2)
	require.NoError(t, err)
	_, _ = bm.Put(0, 0, 1)
	_, _ = bm.Put(2, 1, 1)

	var buf bytes.Buffer
	require.NoError(t, pbm.WriteBit(&buf, bm))
	require.Equal(t, "P1\n3 2\n1 0 0\n0 0 1\n", buf.String())
}

// TestWriteBit_ReadBack feeds the writer's output back through ReadBit.
func TestWriteBit_ReadBack(t *testing.T) {
	src := "P1\n# page\n5 3\n10011\n01010\n11100\n"
	bm, err := pbm.ReadBit(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pbm.WriteBit(&buf, bm))
	again, err := pbm.ReadBit(&buf)
	require.NoError(t, err)
	require.True(t, bm.Equal(again))
}

// TestWriteBit_Nil rejects a nil bitmap.
func TestWriteBit_Nil(t *testing.T) {
	require.ErrorIs(t, pbm.WriteBit(&bytes.Buffer{}, nil), grid.ErrInvalidDimensions)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteBit_WriterError surfaces the sink's error.
func TestWriteBit_WriterError(t *testing.T) {
	bm, _ := grid.NewBit(2, 2)
	require.EqualError(t, pbm.WriteBit(failWriter{}, bm), "disk full")
}

// TestOpenCreate_Zstd writes a bitmap through a .zst file and reads it back,
// and checks that plain paths are left uncompressed.
func TestOpenCreate_Zstd(t *testing.T) {
	dir := t.TempDir()
	bm, err := grid.NewBit(4, 3)
	require.NoError(t, err)
	_, _ = bm.Put(1, 1, 1)
	_, _ = bm.Put(3, 2, 1)

	for _, name := range []string{"page.pbm", "page.pbm" + pbm.ZstdExt} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			wc, err := pbm.Create(path)
			require.NoError(t, err)
			require.NoError(t, pbm.WriteBit(wc, bm))
			require.NoError(t, wc.Close())

			rc, err := pbm.Open(path)
			require.NoError(t, err)
			got, err := pbm.ReadBit(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			require.True(t, bm.Equal(got))
		})
	}
}

// TestOpen_Missing reports the filesystem error.
func TestOpen_Missing(t *testing.T) {
	_, err := pbm.Open(filepath.Join(t.TempDir(), "nope.pbm"))
	require.Error(t, err)
	_, err = pbm.Open(filepath.Join(t.TempDir(), "nope.pbm.zst"))
	require.Error(t, err)
}
