package pbm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is the file suffix that switches Open and Create to zstd framing.
const ZstdExt = ".zst"

// Open opens path for reading. A path ending in ZstdExt is decompressed
// transparently. Closing the result closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ZstdExt) {
		return f, nil
	}
	dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("pbm: zstd reader for %s: %w", path, err)
	}

	return &zstdReadCloser{Decoder: dec, f: f}, nil
}

// Create creates or truncates path for writing. A path ending in ZstdExt is
// compressed transparently; Close finishes the frame, then closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ZstdExt) {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderConcurrency(1))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("pbm: zstd writer for %s: %w", path, err)
	}

	return &zstdWriteCloser{Encoder: enc, f: f}, nil
}

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

// Close releases the decoder and closes the underlying file.
func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type zstdWriteCloser struct {
	*zstd.Encoder
	f *os.File
}

// Close flushes the zstd frame and closes the underlying file.
func (z *zstdWriteCloser) Close() error {
	err := z.Encoder.Close()
	if cerr := z.f.Close(); err == nil {
		err = cerr
	}

	return err
}
