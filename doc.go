// Package runsearch locates keys in sorted runs of key+satellite records.
//
// A run is any read-only, index-addressable sequence that is ordered
// ascending under a three-way comparator. The package answers two
// questions about a run:
//
//   - Low bound: the first index at which a target key could be inserted
//     while keeping the run sorted, landing before any equal duplicates.
//   - High bound: the last index after which a target key could be
//     inserted, landing after any equal duplicates.
//
// It also resolves a whole sorted batch of targets at once: the batch
// search splits on the middle target and reuses its low-bound index to
// narrow the search window for both remaining halves, so large batches
// cost far less than independent lookups.
//
// # Quick Start
//
//	list := runsearch.Slice[int]{2, 2, 4, 4, 4, 7}
//
//	idx, found := runsearch.Low(list, 4, 0, list.Len()-1, compare.Ordered[int]())
//	// idx == 2, found == true
//
//	idx, found = runsearch.High(list, 4, 0, list.Len()-1, compare.Ordered[int]())
//	// idx == 4, found == true
//
// Or bind a run and comparator once with a Searcher:
//
//	s := runsearch.NewSearcher(list, compare.Ordered[int]())
//	indices := make([]int, 3)
//	foundSet, _ := s.LowBatch([]int{2, 4, 9}, indices)
//	// indices == [0, 2, 6]
//
// # Raw Records
//
// Fixed-stride byte runs (key prefix plus satellite payload per record)
// live in the run package and plug into the same search functions via
// compare.Bytes. The codec package serializes such runs with zstd or
// LZ4 block compression for handoff between processes.
//
// # Contracts
//
// The core functions never allocate, never mutate caller buffers, and
// hold no state across calls. The run must be sorted ascending under
// the supplied comparator and batch targets must themselves be sorted;
// neither precondition is checked. Range validation, logging, and the
// parallel batch driver live only on the Searcher facade.
package runsearch
