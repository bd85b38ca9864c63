package runsearch_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/runsearch"
	"github.com/hupe1980/runsearch/compare"
	"github.com/hupe1980/runsearch/testutil"
)

func BenchmarkLow(b *testing.B) {
	rng := testutil.NewRNG(1)
	raw := rng.SortedInts(1_000_000, 500_000)
	list := runsearch.Slice[int](raw)
	cmp := compare.Ordered[int]()

	targets := make([]int, 1024)
	for i := range targets {
		targets[i] = rng.Intn(600_000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runsearch.Low(list, targets[i%len(targets)], 0, len(raw)-1, cmp)
	}
}

func BenchmarkHigh(b *testing.B) {
	rng := testutil.NewRNG(1)
	raw := rng.SortedInts(1_000_000, 500_000)
	list := runsearch.Slice[int](raw)
	cmp := compare.Ordered[int]()

	targets := make([]int, 1024)
	for i := range targets {
		targets[i] = rng.Intn(600_000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runsearch.High(list, targets[i%len(targets)], 0, len(raw)-1, cmp)
	}
}

// BenchmarkLowBatch contrasts the range-narrowing batch search with the
// same number of independent full-range searches.
func BenchmarkLowBatch(b *testing.B) {
	rng := testutil.NewRNG(2)
	raw := rng.SortedInts(1_000_000, 500_000)
	list := runsearch.Slice[int](raw)
	cmp := compare.Ordered[int]()

	for _, batchLen := range []int{100, 10_000, 100_000} {
		targets := rng.SortedInts(batchLen, 600_000)
		indices := make([]int, batchLen)

		b.Run(fmt.Sprintf("Recursive/%d", batchLen), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				runsearch.LowBatch(targets, list, 0, len(raw)-1, cmp, indices)
			}
		})

		b.Run(fmt.Sprintf("Independent/%d", batchLen), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for j, target := range targets {
					indices[j], _ = runsearch.Low(list, target, 0, len(raw)-1, cmp)
				}
			}
		})
	}
}

func BenchmarkLowFixedRun(b *testing.B) {
	rng := testutil.NewRNG(3)
	f := rng.SortedRun(100_000, 32, 50_000)
	cmp := compare.Bytes()

	keys := make([][]byte, 1024)
	for i := range keys {
		keys[i] = testutil.Key(uint32(rng.Intn(60_000)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runsearch.Low[[]byte](f, keys[i%len(keys)], 0, f.Len()-1, cmp)
	}
}
