// Package testutil provides deterministic generators for tests and
// benchmarks.
package testutil

import (
	"encoding/binary"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/runsearch/run"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// SortedInts generates n sorted ints drawn from [0, maxKey). Duplicate
// runs are common when maxKey < n, which is exactly what bound searches
// need to exercise.
func (r *RNG) SortedInts(n, maxKey int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxKey)
	}
	sort.Ints(out)
	return out
}

// SortedRun generates a fixed-stride run of count records with the given
// stride. Keys are 4-byte big-endian uint32 prefixes drawn from
// [0, maxKey), so lexicographic byte order matches numeric order; the
// satellite bytes are random filler.
func (r *RNG) SortedRun(count, stride, maxKey int) *run.Fixed {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint32, count)
	for i := range keys {
		keys[i] = uint32(r.rand.Intn(maxKey))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	buf := make([]byte, count*stride)
	for i, k := range keys {
		off := i * stride
		binary.BigEndian.PutUint32(buf[off:], k)
		r.rand.Read(buf[off+4 : off+stride])
	}

	f, err := run.NewFixed(buf, stride, 4)
	if err != nil {
		panic(err)
	}
	return f
}

// Key encodes a numeric key the way SortedRun lays keys out.
func Key(k uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], k)
	return b[:]
}
