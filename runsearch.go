package runsearch

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/runsearch/compare"
)

// Below this many targets a parallel batch is not worth the dispatch
// overhead and runs sequentially.
const minParallelBatch = 1024

// Searcher binds a sorted list and a comparator once and answers bound
// queries against them. It validates ranges and output buffers, emits
// debug logging, and hosts the parallel batch driver; the underlying
// search functions stay check-free.
//
// A Searcher is immutable after construction and safe for concurrent use
// as long as the bound list is not mutated.
type Searcher[E, T any] struct {
	list List[E]
	cmp  compare.Func[T, E]
	opts options
}

// NewSearcher creates a Searcher over list using cmp. The list must be
// sorted ascending under cmp and cmp must be non-nil.
func NewSearcher[E, T any](list List[E], cmp compare.Func[T, E], optFns ...Option) *Searcher[E, T] {
	opts := options{
		logger:      NoopLogger(),
		parallelism: 1,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Searcher[E, T]{
		list: list,
		cmp:  cmp,
		opts: opts,
	}
}

// Low returns the low-bound index of target over the full list.
func (s *Searcher[E, T]) Low(target T) (index int, found bool) {
	index, found = Low(s.list, target, 0, s.list.Len()-1, s.cmp)
	s.opts.logger.LogSearch("low", index, found)
	return index, found
}

// High returns the high-bound index of target over the full list.
func (s *Searcher[E, T]) High(target T) (index int, found bool) {
	index, found = High(s.list, target, 0, s.list.Len()-1, s.cmp)
	s.opts.logger.LogSearch("high", index, found)
	return index, found
}

// LowRange returns the low-bound index of target over the closed sub-range
// [low, high]. A malformed range yields *ErrInvalidRange; the empty range
// low == high+1 is valid and reports not found at index low.
func (s *Searcher[E, T]) LowRange(target T, low, high int) (index int, found bool, err error) {
	if err := s.checkRange(low, high); err != nil {
		return 0, false, err
	}
	index, found = Low(s.list, target, low, high, s.cmp)
	s.opts.logger.LogSearch("low", index, found)
	return index, found, nil
}

// HighRange returns the high-bound index of target over the closed
// sub-range [low, high]. A malformed range yields *ErrInvalidRange; the
// empty range low == high+1 is valid and reports not found at index low-1.
func (s *Searcher[E, T]) HighRange(target T, low, high int) (index int, found bool, err error) {
	if err := s.checkRange(low, high); err != nil {
		return 0, false, err
	}
	index, found = High(s.list, target, low, high, s.cmp)
	s.opts.logger.LogSearch("high", index, found)
	return index, found, nil
}

// LowBatch resolves the low-bound index of every target in the sorted
// batch over the full list, writing into the caller's indices slice. The
// returned bitmap holds the positions within targets whose key exists in
// the list.
func (s *Searcher[E, T]) LowBatch(targets []T, indices []int) (*roaring.Bitmap, error) {
	if len(indices) < len(targets) {
		return nil, &ErrShortBuffer{Need: len(targets), Got: len(indices)}
	}

	n := s.list.Len()
	LowBatch(targets, s.list, 0, n-1, s.cmp, indices)

	found := s.foundSet(targets, indices)
	s.opts.logger.LogBatch(len(targets), int(found.GetCardinality()))
	return found, nil
}

// LowBatchParallel is LowBatch spread across goroutines. The sorted batch
// is cut into contiguous chunks; each chunk's list window is narrowed up
// front with a single low-bound probe, then the chunks run concurrently
// on an errgroup. Output slots are disjoint, so no locking is involved.
//
// Parallelism comes from WithParallelism. Small batches and parallelism
// <= 1 fall back to the sequential search. ctx cancellation is observed
// between chunks, not inside one.
func (s *Searcher[E, T]) LowBatchParallel(ctx context.Context, targets []T, indices []int) (*roaring.Bitmap, error) {
	if len(indices) < len(targets) {
		return nil, &ErrShortBuffer{Need: len(targets), Got: len(indices)}
	}

	n := s.list.Len()
	p := s.opts.parallelism
	if p <= 1 || n == 0 || len(targets) < minParallelBatch {
		LowBatch(targets, s.list, 0, n-1, s.cmp, indices)
		found := s.foundSet(targets, indices)
		s.opts.logger.LogBatch(len(targets), int(found.GetCardinality()))
		return found, nil
	}

	type span struct {
		tlow, thigh int // target sub-batch [tlow, thigh)
		low, high   int // list window
	}

	// Narrow each chunk's window sequentially: the low bound of the
	// chunk's first target caps the previous chunk and floors this one,
	// exactly as the recursive split does.
	chunk := (len(targets) + p - 1) / p
	spans := make([]span, 0, p)
	low := 0
	for start := 0; start < len(targets); start += chunk {
		end := min(start+chunk, len(targets))
		high := n - 1
		if end < len(targets) {
			index, _ := Low(s.list, targets[end], low, n-1, s.cmp)
			if index > n-1 {
				index = n - 1
			}
			high = index
		}
		spans = append(spans, span{tlow: start, thigh: end, low: low, high: high})
		low = high
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p)
	for _, sp := range spans {
		sp := sp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			LowBatch(targets[sp.tlow:sp.thigh], s.list, sp.low, sp.high, s.cmp, indices[sp.tlow:sp.thigh])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := s.foundSet(targets, indices)
	s.opts.logger.LogBatch(len(targets), int(found.GetCardinality()))
	return found, nil
}

// foundSet recovers per-target found flags from low-bound indices: a
// target exists iff its slot points at an in-range element equal to it.
func (s *Searcher[E, T]) foundSet(targets []T, indices []int) *roaring.Bitmap {
	n := s.list.Len()
	found := roaring.New()
	for i, target := range targets {
		if index := indices[i]; index < n && s.cmp(target, s.list.At(index)) == 0 {
			found.Add(uint32(i))
		}
	}
	return found
}

func (s *Searcher[E, T]) checkRange(low, high int) error {
	n := s.list.Len()
	if low < 0 || high > n-1 || low > high+1 {
		return &ErrInvalidRange{Low: low, High: high, Len: n}
	}
	return nil
}
