// Package run provides the fixed-stride record representation searched by
// the runsearch package.
//
// A run is a caller-owned byte buffer holding back-to-back records of
// identical size (the stride). Each record starts with its key (the key
// extent) followed by an opaque satellite payload. Runs are read-only
// views: no copying, no mutation, no ownership transfer.
package run

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStride is returned when the stride is not positive.
	ErrInvalidStride = errors.New("stride must be positive")

	// ErrInvalidKeyExtent is returned when the key extent is not in (0, stride].
	ErrInvalidKeyExtent = errors.New("key extent must be in (0, stride]")

	// ErrMisalignedBuffer is returned when the buffer length is not a
	// multiple of the stride.
	ErrMisalignedBuffer = errors.New("buffer length must be a multiple of stride")
)

// Fixed is a read-only view over a buffer of fixed-stride key+satellite
// records. It satisfies the runsearch List interface with []byte elements,
// so it plugs directly into the search functions together with
// compare.Bytes.
type Fixed struct {
	buf       []byte
	stride    int
	keyExtent int
}

// NewFixed creates a view over buf with the given record stride and key
// extent. buf stays owned by the caller and is never written through the
// view.
func NewFixed(buf []byte, stride, keyExtent int) (*Fixed, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	if keyExtent <= 0 || keyExtent > stride {
		return nil, fmt.Errorf("%w: key extent %d, stride %d", ErrInvalidKeyExtent, keyExtent, stride)
	}
	if len(buf)%stride != 0 {
		return nil, fmt.Errorf("%w: length %d, stride %d", ErrMisalignedBuffer, len(buf), stride)
	}

	return &Fixed{
		buf:       buf,
		stride:    stride,
		keyExtent: keyExtent,
	}, nil
}

// Len returns the number of records.
func (f *Fixed) Len() int { return len(f.buf) / f.stride }

// At returns the key bytes of record i. The slice aliases the underlying
// buffer and is capped at the key extent.
func (f *Fixed) At(i int) []byte {
	off := i * f.stride
	return f.buf[off : off+f.keyExtent : off+f.keyExtent]
}

// Record returns the full record at index i, key and satellite payload.
// The slice aliases the underlying buffer.
func (f *Fixed) Record(i int) []byte {
	off := i * f.stride
	return f.buf[off : off+f.stride : off+f.stride]
}

// Satellite returns the satellite payload of record i, the bytes after
// the key. The slice aliases the underlying buffer and is empty when the
// key extent equals the stride.
func (f *Fixed) Satellite(i int) []byte {
	off := i * f.stride
	return f.buf[off+f.keyExtent : off+f.stride : off+f.stride]
}

// Stride returns the per-record size in bytes.
func (f *Fixed) Stride() int { return f.stride }

// KeyExtent returns the key prefix size in bytes.
func (f *Fixed) KeyExtent() int { return f.keyExtent }

// Bytes returns the underlying buffer.
func (f *Fixed) Bytes() []byte { return f.buf }
