package runsearch

// List is a read-only, index-addressable sequence of elements.
//
// Implementations expose the ordered run being searched. How an element
// is stored (plain slice, fixed-stride byte records, mmap page) is the
// implementation's business; the search functions only ever call Len
// and At.
type List[E any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i, 0 <= i < Len().
	At(i int) E
}

// Slice adapts a plain Go slice to the List interface.
type Slice[E any] []E

// Len returns the number of elements.
func (s Slice[E]) Len() int { return len(s) }

// At returns the element at index i.
func (s Slice[E]) At(i int) E { return s[i] }
