package codec

import (
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Zstd compresses run payloads with zstd. Better ratio than LZ4, good
// for cold runs.
type Zstd struct{}

// Name returns the stable codec name.
func (Zstd) Name() string { return "zstd" }

// Compress returns src as a zstd frame.
func (Zstd) Compress(src []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(src, nil), nil
}

// Decompress expands src into exactly size bytes.
func (Zstd) Decompress(src []byte, size int) ([]byte, error) {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	decoded, err := dec.DecodeAll(src, make([]byte, 0, size))
	if err != nil {
		return nil, err
	}
	if len(decoded) != size {
		return nil, errors.New("decompressed size mismatch")
	}
	return decoded, nil
}
