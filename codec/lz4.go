package codec

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses run payloads with LZ4 block compression. Fast, good for
// hot runs.
type LZ4 struct{}

// Name returns the stable codec name.
func (LZ4) Name() string { return "lz4" }

// Compress returns src as an LZ4 block, or nil when src is
// incompressible.
func (LZ4) Compress(src []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(src))
	dst := make([]byte, bound)

	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return dst[:n], nil
}

// Decompress expands src into exactly size bytes.
func (LZ4) Decompress(src []byte, size int) ([]byte, error) {
	dst := make([]byte, size)

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, errors.New("decompressed size mismatch")
	}
	return dst, nil
}
