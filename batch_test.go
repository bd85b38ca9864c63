package runsearch_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/runsearch"
	"github.com/hupe1980/runsearch/compare"
	"github.com/hupe1980/runsearch/testutil"
)

func TestLowBatch(t *testing.T) {
	cmp := compare.Ordered[int]()

	tests := []struct {
		name    string
		list    []int
		targets []int
		want    []int
	}{
		{"Mixed", []int{2, 2, 4, 4, 4, 7}, []int{2, 4, 9}, []int{0, 2, 6}},
		{"SingleTarget", []int{2, 2, 4, 4, 4, 7}, []int{4}, []int{2}},
		{"NoTargets", []int{2, 2, 4, 4, 4, 7}, nil, []int{}},
		{"EmptyList", nil, []int{1, 2, 3}, []int{0, 0, 0}},
		{"AllBelow", []int{5, 6, 7}, []int{1, 2, 3}, []int{0, 0, 0}},
		{"AllAbove", []int{1, 2, 3}, []int{10, 20, 30}, []int{3, 3, 3}},
		{"AllEqual", []int{4, 4, 4, 4}, []int{4, 4, 4}, []int{0, 0, 0}},
		{"Interleaved", []int{10, 20, 30, 40}, []int{5, 15, 25, 35, 45}, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := runsearch.Slice[int](tt.list)
			indices := make([]int, len(tt.targets))
			runsearch.LowBatch(tt.targets, list, 0, len(tt.list)-1, cmp, indices)
			assert.Equal(t, tt.want, indices[:len(tt.targets)])
		})
	}
}

// TestLowBatchSplitClamp pins the split-point clamping behavior: when the
// middle target lands past the end of the range, its written index is the
// unclamped high+1, and targets above it must still resolve to the same
// insertion point instead of being lost to an out-of-range window.
func TestLowBatchSplitClamp(t *testing.T) {
	cmp := compare.Ordered[int]()
	list := runsearch.Slice[int]{1, 2, 3}

	// Middle target (10) is larger than every list element.
	targets := []int{0, 10, 20}
	indices := make([]int, len(targets))
	runsearch.LowBatch(targets, list, 0, 2, cmp, indices)

	assert.Equal(t, []int{0, 3, 3}, indices)
}

// TestLowBatchAgreement checks that a batch produces, for every target,
// exactly the index an independent full-range Low would produce.
func TestLowBatchAgreement(t *testing.T) {
	rng := testutil.NewRNG(1234)
	cmp := compare.Ordered[int]()

	sizes := []struct {
		listLen, batchLen int
	}{
		{1, 1},
		{10, 3},
		{200, 7},
		{200, 100},
		{200, 500}, // more targets than elements
		{1000, 1000},
	}

	for _, sz := range sizes {
		raw := rng.SortedInts(sz.listLen, max(sz.listLen/4, 2))
		targets := rng.SortedInts(sz.batchLen, max(sz.listLen/3, 3))
		list := runsearch.Slice[int](raw)

		indices := make([]int, len(targets))
		runsearch.LowBatch(targets, list, 0, len(raw)-1, cmp, indices)

		for i, target := range targets {
			want, _ := runsearch.Low(list, target, 0, len(raw)-1, cmp)
			require.Equal(t, want, indices[i],
				"list len %d, batch len %d, target %d at position %d",
				sz.listLen, sz.batchLen, target, i)
		}
	}
}

// TestLowBatchDuplicateTargets checks batches that are themselves full of
// duplicate keys.
func TestLowBatchDuplicateTargets(t *testing.T) {
	cmp := compare.Ordered[int]()
	raw := []int{1, 3, 3, 3, 5, 5, 9}
	targets := []int{3, 3, 3, 5, 5, 9, 9}
	require.True(t, sort.IntsAreSorted(targets))

	list := runsearch.Slice[int](raw)
	indices := make([]int, len(targets))
	runsearch.LowBatch(targets, list, 0, len(raw)-1, cmp, indices)

	assert.Equal(t, []int{1, 1, 1, 4, 4, 6, 6}, indices)
}
