// Package codec serializes fixed-stride runs for handoff between
// processes.
//
// The encoded form is self-describing: a header records the codec name,
// record geometry, and sizes, followed by the (possibly compressed)
// record payload. Incompressible payloads are stored raw, flagged by a
// compressed size of zero.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/runsearch/run"
)

var (
	// ErrBadMagic is returned when data does not start with the run
	// encoding magic.
	ErrBadMagic = errors.New("bad magic")

	// ErrUnknownCodec is returned when the codec named in the header is
	// not registered.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrTruncated is returned when data ends before the header or
	// payload does.
	ErrTruncated = errors.New("truncated run encoding")
)

// Codec compresses and decompresses run payloads.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Compress returns src compressed, or nil when src is incompressible.
	Compress(src []byte) ([]byte, error)

	// Decompress expands src into exactly size bytes.
	Decompress(src []byte, size int) ([]byte, error)

	// Name is the stable name stored in encoded headers.
	Name() string
}

// Default is the codec used when none is specified.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
//
// Decoding resolves the codec through this registry using the name stored
// in the encoded header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

var magic = [4]byte{'R', 'U', 'N', '1'}

// Header: magic (4) | name len (1) | name | stride (u32) | key extent (u32)
// | raw size (u64) | compressed size (u64, 0 = stored raw) | payload.

// EncodeRun serializes r using c. A nil codec selects Default.
func EncodeRun(c Codec, r *run.Fixed) ([]byte, error) {
	if c == nil {
		c = Default
	}

	raw := r.Bytes()
	enc, err := c.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("codec %s: compress: %w", c.Name(), err)
	}
	// Store raw if compression does not help.
	if len(enc) >= len(raw) {
		enc = nil
	}

	name := c.Name()
	payload := enc
	encSize := uint64(len(enc))
	if enc == nil {
		payload = raw
	}

	out := make([]byte, 0, 4+1+len(name)+4+4+8+8+len(payload))
	out = append(out, magic[:]...)
	out = append(out, byte(len(name)))
	out = append(out, name...)
	out = binary.LittleEndian.AppendUint32(out, uint32(r.Stride()))
	out = binary.LittleEndian.AppendUint32(out, uint32(r.KeyExtent()))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(raw)))
	out = binary.LittleEndian.AppendUint64(out, encSize)
	out = append(out, payload...)
	return out, nil
}

// DecodeRun deserializes a run encoded by EncodeRun, resolving the codec
// from the header.
func DecodeRun(data []byte) (*run.Fixed, error) {
	if len(data) < 4+1 {
		return nil, ErrTruncated
	}
	if [4]byte(data[:4]) != magic {
		return nil, ErrBadMagic
	}

	nameLen := int(data[4])
	rest := data[5:]
	if len(rest) < nameLen+4+4+8+8 {
		return nil, ErrTruncated
	}
	name := string(rest[:nameLen])
	rest = rest[nameLen:]

	stride := int(binary.LittleEndian.Uint32(rest[0:]))
	keyExtent := int(binary.LittleEndian.Uint32(rest[4:]))
	rawSize := binary.LittleEndian.Uint64(rest[8:])
	encSize := binary.LittleEndian.Uint64(rest[16:])
	rest = rest[24:]

	var buf []byte
	if encSize == 0 {
		// Stored raw.
		if uint64(len(rest)) < rawSize {
			return nil, ErrTruncated
		}
		buf = make([]byte, rawSize)
		copy(buf, rest[:rawSize])
	} else {
		if uint64(len(rest)) < encSize {
			return nil, ErrTruncated
		}
		c, ok := ByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
		}
		out, err := c.Decompress(rest[:encSize], int(rawSize))
		if err != nil {
			return nil, fmt.Errorf("codec %s: decompress: %w", name, err)
		}
		buf = out
	}

	return run.NewFixed(buf, stride, keyExtent)
}
